// Package contracts компилирует встроенные JSON-схемы и проверяет по ним сущности и события.
package contracts

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"real-estate-platform/schemas"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ключи схем, доступных для проверки
const (
	PropertyV1             = "Property/1.0.0"
	PropertyCreatedEventV1 = "PropertyCreatedEvent/1.0.0"
)

var schemaRoots = []string{"entities", "events"}

var (
	compileOnce     sync.Once
	compiledSchemas map[string]*jsonschema.Schema
	compileErr      error
)

func load() (map[string]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiledSchemas, compileErr = compileAll(schemas.SchemasFS)
	})
	return compiledSchemas, compileErr
}

func compileAll(fsys fs.FS) (map[string]*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	var paths []string
	for _, root := range schemaRoots {
		err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".json") {
				return nil
			}
			file, err := fsys.Open(path)
			if err != nil {
				return err
			}
			defer file.Close()

			// все схемы добавляются ресурсами до компиляции, чтобы работали $ref между ними
			if err := compiler.AddResource(path, file); err != nil {
				return fmt.Errorf("failed to add schema resource %s: %w", path, err)
			}
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("error walking schema resources: %w", err)
		}
	}

	compiled := make(map[string]*jsonschema.Schema, len(paths))
	for _, path := range paths {
		schema, err := compiler.Compile(path)
		if err != nil {
			return nil, fmt.Errorf("could not compile schema %s: %w", path, err)
		}
		key := generateKeyFromPath(path)
		if key == "" {
			return nil, fmt.Errorf("schema path %s does not match <root>/<name>/v<N>.json", path)
		}
		compiled[key] = schema
	}
	return compiled, nil
}

// generateKeyFromPath: "events/property-created/v1.json" -> "PropertyCreatedEvent/1.0.0",
// "entities/property/v1.json" -> "Property/1.0.0"
func generateKeyFromPath(path string) string {
	parts := strings.Split(strings.TrimSuffix(path, ".json"), "/")
	if len(parts) != 3 || !strings.HasPrefix(parts[2], "v") {
		return ""
	}

	caser := cases.Title(language.English)
	var name strings.Builder
	for _, p := range strings.Split(parts[1], "-") {
		name.WriteString(caser.String(p))
	}
	if parts[0] == "events" {
		name.WriteString("Event")
	}

	version := strings.TrimPrefix(parts[2], "v") + ".0.0"
	return name.String() + "/" + version
}

// Validate проверяет JSON-документ по схеме с ключом key
func Validate(key string, body []byte) error {
	compiled, err := load()
	if err != nil {
		return fmt.Errorf("schemas unavailable: %w", err)
	}
	schema, ok := compiled[key]
	if !ok {
		return fmt.Errorf("schema '%s' not found", key)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return &ViolationError{Schema: key, Details: []string{"body is not valid JSON: " + err.Error()}}
	}
	if err := schema.Validate(v); err != nil {
		return newViolationError(key, err)
	}
	return nil
}

// ValidateEvent проверяет тело сообщения по типу и версии события
func ValidateEvent(eventType, eventVersion string, body []byte) error {
	return Validate(eventType+"/"+eventVersion, body)
}
