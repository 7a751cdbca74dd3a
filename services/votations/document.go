package votations

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	BaseLanguage = "fr"
	// the date format used for lastUpdate
	lastUpdateLayout = "2006-01-02 15:04"
)

var Languages = []string{"fr", "de", "it"}

type Translation struct {
	Title      string `json:"title"`
	DateLabel  string `json:"date_label"`
	Supporters string `json:"supporters"`
	Opponents  string `json:"opponents"`
	Update     string `json:"update"`
	Adoption   string `json:"adoption"`
	Rejection  string `json:"rejection"`
}

// Translations returns the ui labels the widget displays, keyed by
// language. Each call returns a fresh copy.
func Translations() map[string]Translation {
	return map[string]Translation{
		"fr": {
			Title:      "Financement des campagnes",
			DateLabel:  "Date",
			Supporters: "Soutiens",
			Opponents:  "Opposants",
			Update:     "Mise à jour",
			Adoption:   "adoption",
			Rejection:  "rejet",
		},
		"de": {
			Title:      "Kampagnenfinanzierung",
			DateLabel:  "Datum",
			Supporters: "Befürworter",
			Opponents:  "Gegner",
			Update:     "Aktualisierung",
			Adoption:   "annahme",
			Rejection:  "ablehnung",
		},
		"it": {
			Title:      "Finanziamento delle campagne",
			DateLabel:  "Data",
			Supporters: "Sostenitori",
			Opponents:  "Oppositori",
			Update:     "Aggiornamento",
			Adoption:   "adozione",
			Rejection:  "rigetto",
		},
	}
}

type Document struct {
	LastUpdate   string                 `json:"lastUpdate"`
	NextVoteDate string                 `json:"nextVoteDate"`
	Translations map[string]Translation `json:"translations"`
	Votations    []Votation             `json:"votations"`
}

// WriteDocument replaces the file at `path` with the indented json of
// the document. The file is written next to its destination first and
// then renamed, so readers never observe a partial document.
func WriteDocument(path string, doc Document) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	encoder := json.NewEncoder(tmp)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	err = encoder.Encode(doc)
	if err != nil {
		tmp.Close()
		return err
	}
	err = tmp.Chmod(0644)
	if err != nil {
		tmp.Close()
		return err
	}
	err = tmp.Close()
	if err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
