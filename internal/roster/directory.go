package roster

import (
	"encoding/json"
	"fmt"
	"os"
)

// Directory maps a player's display name, exactly as it appears in
// raid event text, to the discord user id used to mention them.
// It is loaded once and never modified afterwards.
type Directory struct {
	ids map[string]string
}

func NewDirectory(ids map[string]string) Directory {
	copied := make(map[string]string, len(ids))
	for name, id := range ids {
		copied[name] = id
	}
	return Directory{ids: copied}
}

// Read a JSON object of name -> user id
func LoadDirectory(path string) (Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Directory{}, fmt.Errorf("could not read player directory %s: %w", path, err)
	}
	var ids map[string]string
	if err := json.Unmarshal(data, &ids); err != nil {
		return Directory{}, fmt.Errorf("could not decode player directory %s: %w", path, err)
	}
	return NewDirectory(ids), nil
}

func (d Directory) Lookup(name string) (string, bool) {
	id, ok := d.ids[name]
	return id, ok && id != ""
}

// Mention renders a known player as a discord mention and an
// unknown one as their name in bold
func (d Directory) Mention(name string) string {
	if id, ok := d.Lookup(name); ok {
		return fmt.Sprintf("<@%s>", id)
	}
	return fmt.Sprintf("**%s**", name)
}

func (d Directory) Len() int {
	return len(d.ids)
}
