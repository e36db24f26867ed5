package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spboyer/colcheck/schemas"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// defaultPrinter is used to format schema validation error messages.
var defaultPrinter = message.NewPrinter(language.English)

// checksSchema is the compiled JSON Schema for check definition files.
var checksSchema *jsonschema.Schema

func init() {
	checksSchema = mustCompileSchema(schemas.ChecksSchemaJSON, "checks.schema.json")
}

func mustCompileSchema(raw string, name string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("parsing embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("adding %s: %v", name, err))
	}
	return compiler.MustCompile(name)
}

// ValidateChecksBytes validates raw YAML bytes against the check definition
// schema. Each problem is reported as "/pointer: message"; problems inside a
// named check are prefixed with `check "<name>": `.
func ValidateChecksBytes(data []byte) []string {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return []string{fmt.Sprintf("YAML parse error: %v", err)}
	}
	if doc == nil {
		return []string{"/: document is empty"}
	}

	err := checksSchema.Validate(doc)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{fmt.Sprintf("schema: %v", err)}
	}

	var problems []string
	for _, leaf := range leafErrors(ve) {
		msg := fmt.Sprintf("/%s: %s", strings.Join(leaf.InstanceLocation, "/"), leaf.ErrorKind.LocalizedString(defaultPrinter))
		if name := checkName(doc, leaf.InstanceLocation); name != "" {
			msg = fmt.Sprintf("check %q: %s", name, msg)
		}
		problems = append(problems, msg)
	}
	return problems
}

func leafErrors(ve *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*jsonschema.ValidationError{ve}
	}
	var leaves []*jsonschema.ValidationError
	for _, c := range ve.Causes {
		leaves = append(leaves, leafErrors(c)...)
	}
	return leaves
}

// checkName resolves the name of the check a /checks/N/... location points
// into, or "" when the location is outside a check or the name is unusable.
func checkName(doc any, loc []string) string {
	if len(loc) < 2 || loc[0] != "checks" {
		return ""
	}
	root, ok := doc.(map[string]any)
	if !ok {
		return ""
	}
	items, ok := root["checks"].([]any)
	if !ok {
		return ""
	}
	i, err := strconv.Atoi(loc[1])
	if err != nil || i < 0 || i >= len(items) {
		return ""
	}
	item, ok := items[i].(map[string]any)
	if !ok {
		return ""
	}
	name, _ := item["name"].(string)
	return name
}
