package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"fpl-recommend/internal/config"
	"fpl-recommend/internal/fetch"
	"fpl-recommend/internal/logging"
)

type TypeSet map[string]struct{}

type SchemaMap map[string]TypeSet

type Inventory struct {
	GeneratedAtUTC string     `json:"generated_at_utc"`
	BaseURL        string     `json:"base_url"`
	Endpoints      []Endpoint `json:"endpoints"`
}

type Endpoint struct {
	Name   string  `json:"name"`
	Path   string  `json:"path"`
	Bytes  int     `json:"bytes"`
	Fields []Field `json:"fields"`
}

type Field struct {
	Path  string   `json:"path"`
	Types []string `json:"types"`
}

type rawFetcher interface {
	FetchRaw(ctx context.Context, urlPath string) ([]byte, error)
}

var endpoints = []struct {
	Name string
	Path string
}{
	{"bootstrap-static", fetch.PathBootstrapStatic},
	{"fixtures", fetch.PathFixtures},
}

func main() {
	cfg := config.Load()

	fs := flag.NewFlagSet("schema-inventory", flag.ExitOnError)
	cfg.RegisterFlags(fs)
	outPath := fs.String("out", "", "output path (empty = stdout)")
	fs.Parse(os.Args[1:])

	log := logging.WithRun(logging.New(cfg.LogLevel, os.Stderr), "schema-inventory")
	client := cfg.NewClient(log)

	inv, err := buildInventory(context.Background(), client, cfg.BaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := writeInventory(*outPath, os.Stdout, inv); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *outPath != "" {
		fmt.Fprintln(os.Stderr, "wrote", *outPath)
	}
}

func buildInventory(ctx context.Context, f rawFetcher, baseURL string) (Inventory, error) {
	inv := Inventory{
		GeneratedAtUTC: time.Now().UTC().Format(time.RFC3339),
		BaseURL:        baseURL,
		Endpoints:      make([]Endpoint, 0, len(endpoints)),
	}

	for _, ep := range endpoints {
		raw, err := f.FetchRaw(ctx, ep.Path)
		if err != nil {
			return Inventory{}, err
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return Inventory{}, &fetch.ParseError{URL: baseURL + ep.Path, Err: err}
		}

		schema := make(SchemaMap)
		walkSchema(v, "$", schema)
		inv.Endpoints = append(inv.Endpoints, Endpoint{
			Name:   ep.Name,
			Path:   ep.Path,
			Bytes:  len(raw),
			Fields: schemaToFields(schema),
		})
	}
	return inv, nil
}

func writeInventory(outPath string, stdout io.Writer, inv Inventory) error {
	payload, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return err
	}
	payload = append(payload, '\n')

	if outPath == "" {
		_, err := stdout.Write(payload)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, payload, 0o644)
}

// walkSchema records the JSON type of every path. Arrays are sampled from
// their first element only.
func walkSchema(v any, path string, schema SchemaMap) {
	switch x := v.(type) {
	case map[string]any:
		addType(schema, path, "object")
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			walkSchema(x[k], path+"."+k, schema)
		}
	case []any:
		addType(schema, path, "array")
		if len(x) > 0 {
			walkSchema(x[0], path+"[]", schema)
		} else {
			addType(schema, path+"[]", "unknown")
		}
	case string:
		addType(schema, path, "string")
	case bool:
		addType(schema, path, "bool")
	case float64:
		addType(schema, path, "number")
	case nil:
		addType(schema, path, "null")
	default:
		addType(schema, path, fmt.Sprintf("%T", v))
	}
}

func addType(schema SchemaMap, path string, typ string) {
	set, ok := schema[path]
	if !ok {
		set = make(TypeSet)
		schema[path] = set
	}
	set[typ] = struct{}{}
}

func schemaToFields(schema SchemaMap) []Field {
	paths := make([]string, 0, len(schema))
	for p := range schema {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	fields := make([]Field, 0, len(paths))
	for _, p := range paths {
		types := make([]string, 0, len(schema[p]))
		for t := range schema[p] {
			types = append(types, t)
		}
		sort.Strings(types)
		fields = append(fields, Field{Path: p, Types: types})
	}
	return fields
}
