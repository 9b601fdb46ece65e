package output

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rgehrsitz/paygo/internal/domain"
)

// Formatter renders a paystub in one output format
type Formatter interface {
	Name() string
	Format(stub *domain.Paystub) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(stub *domain.Paystub) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(stub *domain.Paystub) ([]byte, error) { return f.F(stub) }

var formatters = map[string]Formatter{}

var aliases = map[string]string{
	"text":    "console",
	"verbose": "console",
	"summary": "console-lite",
	"yml":     "yaml",
	"print":   "pdf",
}

func register(f Formatter) {
	formatters[f.Name()] = f
}

func init() {
	register(ConsoleFormatter{})
	register(ConsoleLiteFormatter{})
	register(JSONFormatter{Pretty: true})
	register(YAMLFormatter{})
	register(CSVFormatter{})
	register(HTMLFormatter{})
	register(PDFFormatter{})
}

// GetFormatterByName looks a formatter up by name or alias; nil when unknown
func GetFormatterByName(name string) Formatter {
	name = strings.ToLower(strings.TrimSpace(name))
	if target, ok := aliases[name]; ok {
		name = target
	}
	return formatters[name]
}

// AvailableFormatterNames lists the registered formatter names
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists the accepted aliases
func AvailableFormatAliases() []string {
	names := make([]string, 0, len(aliases))
	for alias := range aliases {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}

// WriteFormatted renders stub and writes it to paystub_<employee>_<start>.<ext> in the
// working directory, returning the file name
func WriteFormatted(f Formatter, stub *domain.Paystub, ext string) (string, error) {
	data, err := f.Format(stub)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("paystub_%s_%s.%s",
		sanitizeFilePart(stub.Employee.EmployeeID), stub.PayPeriod.Start.Format(domain.DateLayout), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}

func sanitizeFilePart(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
