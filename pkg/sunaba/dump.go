package sunaba

import (
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// DumpTokensJSON renders lines in the stable, tag-discriminated shape
// used for golden *.token.json fixtures.
func DumpTokensJSON(lines []LineToken) ([]byte, error) {
	return json.MarshalIndent(lines, "", "  ")
}

// DumpProgramJSON renders program in the same tag-discriminated shape,
// for golden *.syntax.json fixtures.
func DumpProgramJSON(program *Program) ([]byte, error) {
	return json.MarshalIndent(program, "", "  ")
}

// DumpTokensYAML renders lines as YAML, built on the same MarshalJSON
// shape every Token/LineToken already implements: round-tripping through
// json.Marshal first guarantees the YAML output mirrors the JSON
// discriminated shape exactly, rather than drifting from it via a
// separate marshalling path.
func DumpTokensYAML(lines []LineToken) ([]byte, error) {
	return jsonToYAML(lines)
}

// DumpProgramYAML is DumpTokensYAML's counterpart for a parsed Program.
func DumpProgramYAML(program *Program) ([]byte, error) {
	return jsonToYAML(program)
}

func jsonToYAML(v any) ([]byte, error) {
	asJSON, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(asJSON, &generic); err != nil {
		return nil, err
	}
	return yaml.Marshal(generic)
}
