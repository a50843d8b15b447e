package loot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/osse101/ChoreQuest_Go/configs"
	"github.com/osse101/ChoreQuest_Go/internal/domain"
	"github.com/osse101/ChoreQuest_Go/internal/logger"
	"github.com/osse101/ChoreQuest_Go/internal/utils"
	"github.com/osse101/ChoreQuest_Go/internal/validation"
)

// ErrInvalidTable is returned for tables that pass the schema but cannot be rolled
var ErrInvalidTable = errors.New("invalid loot table")

// Entry is one item a table can drop
type Entry struct {
	Item   string  `json:"item"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
	Chance float64 `json:"chance"`
}

// Table is a named set of independent drop entries
type Table struct {
	MinLevel int     `json:"min_level"`
	Entries  []Entry `json:"entries"`
}

// Config is the loot tables file
type Config struct {
	Version     string           `json:"version"`
	Description string           `json:"description"`
	Tables      map[string]Table `json:"tables"`
}

// Random supplies the rolls used by Roll
type Random interface {
	Float() float64
	IntRange(min, max int) int
}

type defaultRandom struct{}

func (defaultRandom) Float() float64            { return utils.RandomFloat() }
func (defaultRandom) IntRange(min, max int) int { return utils.RandomInt(min, max) }

// Tables holds loaded loot tables. It is read-only after construction.
type Tables struct {
	tables map[string]Table
	rng    Random
}

// NewTables loads and schema-validates a loot tables file
func NewTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadLootFile, err)
	}

	v := validation.NewSchemaValidator(configs.Schemas, configs.SchemaDir)
	if err := v.ValidateBytes(data, validation.LootTablesSchema); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToParseLootFile, err)
	}

	return NewTablesFromConfig(config)
}

// NewTablesFromConfig builds tables from an already parsed config
func NewTablesFromConfig(config Config) (*Tables, error) {
	tables := make(map[string]Table, len(config.Tables))
	for name, table := range config.Tables {
		for i, e := range table.Entries {
			if e.Min < 1 || e.Max < e.Min {
				return nil, fmt.Errorf("%w: %s entry %d (%s) has range [%d,%d]", ErrInvalidTable, name, i, e.Item, e.Min, e.Max)
			}
			if e.Chance < 0 || e.Chance > 1 {
				return nil, fmt.Errorf("%w: %s entry %d (%s) has chance %v", ErrInvalidTable, name, i, e.Item, e.Chance)
			}
		}
		if table.MinLevel < 1 {
			table.MinLevel = 1
		}
		tables[name] = table
	}
	return &Tables{tables: tables, rng: defaultRandom{}}, nil
}

// WithRandom returns a copy of the tables that rolls with r
func (t *Tables) WithRandom(r Random) *Tables {
	return &Tables{tables: t.tables, rng: r}
}

// Has reports whether a table exists
func (t *Tables) Has(name string) bool {
	_, ok := t.tables[name]
	return ok
}

// Names returns table names in sorted order
func (t *Tables) Names() []string {
	names := make([]string, 0, len(t.tables))
	for name := range t.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Roll rolls every entry of a table once. Each entry drops independently when the
// roll is at or below its chance, with a quantity uniform in [min, max].
// Characters below the table's min_level get nothing.
func (t *Tables) Roll(ctx context.Context, name string, level int) ([]domain.ItemGrant, error) {
	table, ok := t.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrLootTableNotFound, name)
	}

	if level < table.MinLevel {
		logger.FromContext(ctx).Debug(LogMsgTableTooHigh, "table", name, "min_level", table.MinLevel, "level", level)
		return nil, nil
	}

	var drops []domain.ItemGrant
	index := make(map[string]int)
	for _, e := range table.Entries {
		if t.rng.Float() > e.Chance {
			continue
		}
		qty := t.rng.IntRange(e.Min, e.Max)
		if i, seen := index[e.Item]; seen {
			drops[i].Quantity += qty
			continue
		}
		index[e.Item] = len(drops)
		drops = append(drops, domain.ItemGrant{ItemName: e.Item, Quantity: qty})
	}
	return drops, nil
}
