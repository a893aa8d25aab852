package logconf

import "github.com/pelletier/go-toml/v2"

// tomlParser adapts go-toml to the koanf.Parser interface; the koanf module
// set used here ships JSON and YAML parsers only.
type tomlParser struct{}

func (tomlParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var m map[string]interface{}
	if err := toml.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (tomlParser) Marshal(m map[string]interface{}) ([]byte, error) {
	return toml.Marshal(m)
}
