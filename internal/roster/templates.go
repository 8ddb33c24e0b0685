package roster

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	TokenMentions = "{mentions}"
	TokenDate     = "{date}"
)

var (
	ErrNoTemplates = errors.New("no reminder templates")
	ErrBadTemplate = errors.New("reminder template is missing a token")
)

// Templates is the list of reminder bodies one is picked from at random
type Templates []string

func NewTemplates(list []string) (Templates, error) {
	if len(list) == 0 {
		return nil, ErrNoTemplates
	}
	for i, tmpl := range list {
		if !strings.Contains(tmpl, TokenMentions) || !strings.Contains(tmpl, TokenDate) {
			return nil, fmt.Errorf("template %d %q: %w", i, tmpl, ErrBadTemplate)
		}
	}
	return append(Templates(nil), list...), nil
}

// Read a JSON array of template strings
func LoadTemplates(path string) (Templates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read templates %s: %w", path, err)
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("could not decode templates %s: %w", path, err)
	}
	templates, err := NewTemplates(list)
	if err != nil {
		return nil, fmt.Errorf("invalid templates %s: %w", path, err)
	}
	return templates, nil
}

// Pick a template uniformly; intn has the contract of rand.IntN
func (t Templates) Pick(intn func(n int) int) string {
	return t[intn(len(t))]
}

// Render fills the first {mentions} and the first {date} only.
// Later occurrences of either token are left untouched.
func Render(tmpl string, mentions string, date string) string {
	body := strings.Replace(tmpl, TokenMentions, mentions, 1)
	return strings.Replace(body, TokenDate, date, 1)
}
