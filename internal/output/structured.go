package output

import (
	"encoding/json"

	"github.com/rgehrsitz/paygo/internal/domain"
	"gopkg.in/yaml.v3"
)

// JSONFormatter emits the paystub record as JSON
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(stub *domain.Paystub) ([]byte, error) {
	if j.Pretty {
		return json.MarshalIndent(stub, "", "  ")
	}
	return json.Marshal(stub)
}

// YAMLFormatter emits the paystub record as YAML
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(stub *domain.Paystub) ([]byte, error) {
	return yaml.Marshal(stub)
}
