// Package snapshot encodes, validates and persists whole-board snapshots.
//
// A snapshot is a JSON object keyed by column id, in column order:
//
//	{
//	  "todo": {
//	    "title": "To Do",
//	    "color": "bg-pink-500",
//	    "items": [
//	      {"id": "…", "content": "Setup Project React", "priority": "High", "date": "12 Des"}
//	    ]
//	  }
//	}
//
// Decoding checks the embedded JSON Schema and then the board invariants
// (unique ids, non-blank titles and contents). Load falls back to the default
// board when the stored value is absent or fails either check.
package snapshot

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/kanban-go/internal/board"
	"github.com/nibzard/kanban-go/internal/kv"
)

// Key is the well-known store key holding the board.
const Key = "kanban-board"

const schemaURL = "https://github.com/nibzard/kanban-go/snapshot.schema.json"

//go:embed snapshot.schema.json
var schemaSource string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(schemaURL, strings.NewReader(schemaSource)); err != nil {
			schemaErr = fmt.Errorf("load snapshot schema: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile(schemaURL)
	})
	return schema, schemaErr
}

// Schema returns the JSON Schema source used to validate snapshots.
func Schema() string {
	return schemaSource
}

// Encode serializes a board with 2-space indentation and a trailing newline.
func Encode(b board.Board) ([]byte, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses and validates a snapshot.
func Decode(data []byte) (board.Board, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return board.Board{}, &DecodeError{Reason: ReasonUnparseable, Errors: []error{err}}
	}

	sch, err := compiledSchema()
	if err != nil {
		return board.Board{}, err
	}
	if err := sch.Validate(doc); err != nil {
		return board.Board{}, &DecodeError{Reason: ReasonInvalid, Errors: schemaErrors(err)}
	}

	var b board.Board
	if err := json.Unmarshal(data, &b); err != nil {
		return board.Board{}, &DecodeError{Reason: ReasonUnparseable, Errors: []error{err}}
	}
	if errs := Check(b); len(errs) > 0 {
		return board.Board{}, &DecodeError{Reason: ReasonInvalid, Errors: errs}
	}
	return b, nil
}

// Check verifies the board invariants and returns every violation found.
func Check(b board.Board) []error {
	var errs []error
	seenColumns := make(map[string]bool)
	seenTasks := make(map[string]string)

	for _, col := range b.Columns {
		colPath := col.ID
		if strings.TrimSpace(col.ID) == "" {
			errs = append(errs, &PathError{Path: colPath, Err: errors.New("empty column id")})
		}
		if seenColumns[col.ID] {
			errs = append(errs, &PathError{Path: colPath, Err: fmt.Errorf("duplicate column id %q", col.ID)})
		}
		seenColumns[col.ID] = true
		if strings.TrimSpace(col.Title) == "" {
			errs = append(errs, &PathError{Path: colPath + ".title", Err: board.ErrBlank})
		}

		for i, t := range col.Items {
			path := fmt.Sprintf("%s.items[%d]", colPath, i)
			switch first, dup := seenTasks[t.ID]; {
			case strings.TrimSpace(t.ID) == "":
				errs = append(errs, &PathError{Path: path + ".id", Err: board.ErrBlank})
			case dup:
				errs = append(errs, &PathError{Path: path, Err: fmt.Errorf("task id %q already used at %s", t.ID, first)})
			default:
				seenTasks[t.ID] = path
			}
			if strings.TrimSpace(t.Content) == "" {
				errs = append(errs, &PathError{Path: path + ".content", Err: board.ErrBlank})
			}
		}
	}
	return errs
}

// LoadResult describes where a loaded board came from.
type LoadResult struct {
	Board    board.Board
	Fallback bool   // true when the default board was used
	Reason   Reason // why the default was used; empty when Fallback is false
	Err      error  // decode error behind an invalid or unparseable fallback
}

// Load reads the snapshot under key. An absent, unparseable or invalid value
// yields the store's default board. Only transport errors are returned.
func Load(ctx context.Context, store kv.Store, key string, s *board.Store) (LoadResult, error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return LoadResult{Board: s.NewDefaultBoard(), Fallback: true, Reason: ReasonAbsent}, nil
		}
		return LoadResult{}, fmt.Errorf("load snapshot: %w", err)
	}

	b, err := Decode(data)
	if err != nil {
		var de *DecodeError
		if !errors.As(err, &de) {
			return LoadResult{}, err
		}
		return LoadResult{Board: s.NewDefaultBoard(), Fallback: true, Reason: de.Reason, Err: de}, nil
	}
	return LoadResult{Board: b}, nil
}

// Save encodes the board and overwrites the value under key.
func Save(ctx context.Context, store kv.Store, key string, b board.Board) error {
	data, err := Encode(b)
	if err != nil {
		return err
	}
	if err := store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
