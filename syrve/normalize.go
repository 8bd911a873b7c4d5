package syrve

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// ErrMalformedResponse is returned when a supplier response body is neither
// valid JSON nor well-formed XML.
var ErrMalformedResponse = errors.New("supplier response is neither JSON nor well-formed XML")

// Supplier is one directory entry, keyed loosely by field name. The server
// decides the field set; only id and name carry meaning for this tool, the
// rest is passed through for display and export.
type Supplier map[string]string

// Get returns the value for key, or "" when the field is absent.
func (s Supplier) Get(key string) string {
	return s[key]
}

func (s Supplier) ID() string {
	return s.Get("id")
}

func (s Supplier) Name() string {
	return s.Get("name")
}

// NormalizeSuppliers parses a directory response body into supplier records.
// Depending on server version and configuration the endpoint answers with
// either a JSON array or an XML document, so the body is sniffed: JSON is
// attempted first and XML is the fallback. Both branches converge on the same
// record shape.
//
// A recognized body with an unexpected shape (non-array JSON, unknown XML
// root tag) is logged and yields zero records rather than an error.
func NormalizeSuppliers(body []byte, logger *zerolog.Logger) ([]Supplier, error) {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err == nil {
		return normalizeJSON(decoded, logger), nil
	}

	logger.Warn().Msg("supplier response is not JSON, falling back to XML")
	return normalizeXML(body, logger)
}

func normalizeJSON(decoded any, logger *zerolog.Logger) []Supplier {
	elements, ok := decoded.([]any)
	if !ok {
		logger.Warn().Msg("supplier response is JSON but not an array, treating as empty directory")
		return []Supplier{}
	}

	suppliers := make([]Supplier, 0, len(elements))
	for i, element := range elements {
		fields, ok := element.(map[string]any)
		if !ok {
			logger.Warn().Int("index", i).Msg("skipping non-object element in supplier array")
			continue
		}
		record := make(Supplier, len(fields))
		for key, value := range fields {
			record[key] = stringifyField(value)
		}
		suppliers = append(suppliers, record)
	}
	return suppliers
}

// stringifyField flattens a JSON scalar to its string form. The API mixes
// strings, booleans, and numbers across versions ("deleted": false vs "false").
func stringifyField(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	}
}

// xmlNode is a schema-less XML element: tag name, direct text, child elements.
type xmlNode struct {
	XMLName  xml.Name
	Text     string    `xml:",chardata"`
	Children []xmlNode `xml:",any"`
}

func normalizeXML(body []byte, logger *zerolog.Logger) ([]Supplier, error) {
	var root xmlNode
	if err := xml.Unmarshal(body, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	var employees []xmlNode
	switch root.XMLName.Local {
	case "employees":
		for _, child := range root.Children {
			if child.XMLName.Local == "employee" {
				employees = append(employees, child)
			}
		}
	case "employee":
		employees = []xmlNode{root}
	default:
		logger.Error().Str("root", root.XMLName.Local).Msg("unknown root tag in supplier XML, dropping response")
		return []Supplier{}, nil
	}

	suppliers := make([]Supplier, 0, len(employees))
	for _, employee := range employees {
		record := make(Supplier, len(employee.Children))
		for _, field := range employee.Children {
			record[field.XMLName.Local] = strings.TrimSpace(field.Text)
		}
		suppliers = append(suppliers, record)
	}
	return suppliers, nil
}
