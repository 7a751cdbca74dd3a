package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeLabel(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{input: "  Déclaration des Recettes Budgétées ", expected: "déclaration des recettes budgétées"},
		{input: "Budgetierte\n\tEinnahmen", expected: "budgetierte einnahmen"},
		{input: "", expected: ""},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, NormalizeLabel(test.input))
	}
}

func TestMatchLabel(t *testing.T) {
	matchers := []string{"adoption", "annahme"}

	require.True(t, MatchLabel("Campagne pour l'ADOPTION", matchers))
	require.True(t, MatchLabel("Kampagne für die Annahme", matchers))
	require.False(t, MatchLabel("Campagne pour le rejet", matchers))
	require.False(t, MatchLabel("anything", nil))
}
