package votations

import (
	"campaignfinance/lib/timezone"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsFutureVotation(t *testing.T) {
	now := timezone.Day(2025, 3, 1)

	cases := []struct {
		label    string
		expected bool
	}{
		{label: "22.06.2025 Votation X", expected: true},
		{label: "22.06.2024 Votation X", expected: false},
		{label: "22.06.2025 Election Y", expected: false},
		{label: "22.06.2025 Élection du Conseil national", expected: false},
		{label: "22.06.2025 Nationalratswahlen", expected: false},
		{label: "22.06.2025 Elezione federale", expected: false},
		{label: "Votation sans date", expected: false},
		{label: "31.02.2026 Votation impossible", expected: false},
		// the vote day itself is no longer in the future
		{label: "01.03.2025 Votation du jour", expected: false},
		{label: "02.03.2025 Votation de demain", expected: true},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, IsFutureVotation(test.label, now), test.label)
	}
}

func TestExtractVoteDate(t *testing.T) {
	require.Equal(t, "22.06.2025", ExtractVoteDate("22.06.2025 Mon Titre"))
	require.Equal(t, "30.11.2025", ExtractVoteDate("Votation du 30.11.2025"))
	require.Equal(t, "", ExtractVoteDate("Pas de date"))
}

func TestExtractTitle(t *testing.T) {
	cases := []struct {
		label    string
		expected string
	}{
		{label: "22.06.2025 Mon Titre", expected: "Mon Titre"},
		{label: "22.06.2025    Mon Titre  ", expected: "Mon Titre"},
		{label: "  Sans date ", expected: "Sans date"},
		{label: "Titre du 22.06.2025", expected: "Titre du 22.06.2025"},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, ExtractTitle(test.label))
	}
}

func TestClassifyStance(t *testing.T) {
	cases := []struct {
		label     string
		position  Position
		ambiguous bool
	}{
		{label: "Campagne pour l'adoption", position: PositionSupporter},
		{label: "Kampagne für die Annahme", position: PositionSupporter},
		{label: "Campagna per l'adozione", position: PositionSupporter},
		{label: "Campagne pour le rejet", position: PositionOpponent},
		{label: "Kampagne für die Ablehnung", position: PositionOpponent},
		{label: "Campagna per il rigetto", position: PositionOpponent},
		{label: "Campagne d'information", position: PositionUnknown},
		{label: "Adoption ou rejet", position: PositionUnknown, ambiguous: true},
	}

	for _, test := range cases {
		position, ambiguous := ClassifyStance(test.label)
		require.Equal(t, test.position, position, test.label)
		require.Equal(t, test.ambiguous, ambiguous, test.label)
	}
}

func TestIsRevenueDeclaration(t *testing.T) {
	require.True(t, IsRevenueDeclaration("Déclaration des recettes budgétées"))
	require.True(t, IsRevenueDeclaration("Budgetierte Einnahmen"))
	require.True(t, IsRevenueDeclaration("Dichiarazione delle entrate preventivate"))
	require.False(t, IsRevenueDeclaration("Déclaration des recettes définitives"))
	require.False(t, IsRevenueDeclaration("Schlussrechnung"))
}
