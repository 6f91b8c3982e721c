package google

import (
	"encoding/json"
	"os"

	"golang.org/x/oauth2"
)

// LoadToken reads a cached OAuth token. A missing file is an error; the
// caller falls back to an interactive Login.
func LoadToken(filename string) (*oauth2.Token, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

func SaveToken(filename string, tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o600)
}
