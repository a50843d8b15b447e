package item

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/ChoreQuest_Go/configs"
	"github.com/osse101/ChoreQuest_Go/internal/domain"
	"github.com/osse101/ChoreQuest_Go/internal/logger"
	"github.com/osse101/ChoreQuest_Go/internal/repository"
	"github.com/osse101/ChoreQuest_Go/internal/validation"
)

// Sentinel errors for item loader
var (
	ErrDuplicateName = errors.New("duplicate item name")

	ErrInvalidConfig = errors.New("invalid configuration")
)

var validSlots = map[domain.Slot]bool{
	domain.SlotHead: true, domain.SlotChest: true, domain.SlotLegs: true, domain.SlotWeapon: true,
	domain.SlotShield: true, domain.SlotRing: true, domain.SlotNecklace: true, domain.SlotBoots: true,
	domain.SlotGloves: true, domain.SlotNone: true,
}

var validRarities = map[domain.Rarity]bool{
	domain.RarityTrash: true, domain.RarityCommon: true, domain.RarityRare: true,
	domain.RarityEpic: true, domain.RarityLegendary: true,
}

var validItemTypes = map[string]bool{
	domain.ItemTypeConsumable: true, domain.ItemTypeEquipment: true, domain.ItemTypeQuest: true,
}

// Config represents the JSON configuration for items
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def represents a single item definition in the JSON
type Def struct {
	Name          string             `json:"name"`
	Slot          domain.Slot        `json:"slot"`
	ItemType      string             `json:"item_type"`
	Rarity        domain.Rarity      `json:"rarity"`
	Description   string             `json:"description"`
	Weight        string             `json:"weight"` // decimal string, e.g. "2.50"
	Value         int                `json:"value"`
	Stacksize     int                `json:"stacksize"`
	MaxDurability *int               `json:"max_durability"` // omitted means DefaultMaxDurability
	IsRepairable  bool               `json:"is_repairable"`
	Bonuses       domain.ItemBonuses `json:"bonuses"`
	RequiredLevel int                `json:"required_level"`
	Icon          string             `json:"icon"`
}

// ToItem converts the definition into a catalog item with defaults applied
func (d Def) ToItem() (domain.Item, error) {
	weight, err := decimal.NewFromString(d.Weight)
	if err != nil {
		return domain.Item{}, fmt.Errorf(ErrFmtItemBadWeight, ErrInvalidConfig, d.Name, d.Weight)
	}

	item := domain.Item{
		Name:          d.Name,
		Slot:          d.Slot,
		ItemType:      d.ItemType,
		Rarity:        d.Rarity,
		Description:   d.Description,
		Weight:        weight,
		Value:         d.Value,
		Stacksize:     d.Stacksize,
		MaxDurability: domain.DefaultMaxDurability,
		IsRepairable:  d.IsRepairable,
		Bonuses:       d.Bonuses,
		RequiredLevel: d.RequiredLevel,
		Icon:          d.Icon,
	}
	if d.MaxDurability != nil {
		item.MaxDurability = *d.MaxDurability
	}
	if item.Slot == "" {
		item.Slot = domain.SlotNone
	}
	if item.Rarity == "" {
		item.Rarity = domain.RarityCommon
	}
	if item.ItemType == "" {
		item.ItemType = domain.ItemTypeEquipment
	}
	if item.RequiredLevel == 0 {
		item.RequiredLevel = DefaultRequiredLevel
	}
	return item, nil
}

// Loader handles loading and validating item configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToDatabase(ctx context.Context, config *Config, repo repository.Item, configPath string) (*SyncResult, error)
}

// SyncResult contains the result of syncing items to the database
type SyncResult struct {
	ItemsInserted int  `json:"items_inserted"`
	ItemsUpdated  int  `json:"items_updated"`
	ItemsSkipped  int  `json:"items_skipped"`
	Unchanged     bool `json:"unchanged"`
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance using the embedded schemas
func NewLoader() Loader {
	return &itemLoader{
		schemaValidator: validation.NewSchemaValidator(configs.Schemas, configs.SchemaDir),
	}
}

// Load reads and parses an items JSON file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, validation.ItemsSchema); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the item configuration for errors the schema cannot express
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	names := make(map[string]bool, len(config.Items))
	maxWeight := decimal.RequireFromString(MaxItemWeight)

	for i := range config.Items {
		if err := validateItemDef(i, &config.Items[i], names, maxWeight); err != nil {
			return err
		}
	}

	return nil
}

func validateItemDef(index int, def *Def, names map[string]bool, maxWeight decimal.Decimal) error {
	if strings.TrimSpace(def.Name) == "" {
		return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidConfig, index)
	}

	// Names are unique without regard to case
	key := strings.ToLower(def.Name)
	if names[key] {
		return fmt.Errorf("%w: '%s'", ErrDuplicateName, def.Name)
	}
	names[key] = true

	weight, err := decimal.NewFromString(def.Weight)
	if err != nil {
		return fmt.Errorf(ErrFmtItemBadWeight, ErrInvalidConfig, def.Name, def.Weight)
	}
	if weight.IsNegative() || weight.GreaterThan(maxWeight) {
		return fmt.Errorf(ErrFmtItemWeightRange, ErrInvalidConfig, def.Name, MaxItemWeight)
	}
	if !weight.Equal(weight.Truncate(WeightDecimalPlaces)) {
		return fmt.Errorf(ErrFmtItemWeightPrecision, ErrInvalidConfig, def.Name, WeightDecimalPlaces)
	}

	if def.Stacksize < 1 {
		return fmt.Errorf(ErrFmtItemBadStacksize, ErrInvalidConfig, def.Name)
	}
	if def.Value < 0 {
		return fmt.Errorf(ErrFmtItemNegativeValue, ErrInvalidConfig, def.Name)
	}
	if def.MaxDurability != nil && *def.MaxDurability < 0 {
		return fmt.Errorf(ErrFmtItemNegativeDur, ErrInvalidConfig, def.Name)
	}
	if def.Slot != "" && !validSlots[def.Slot] {
		return fmt.Errorf(ErrFmtItemBadSlot, ErrInvalidConfig, def.Name, def.Slot)
	}
	if def.Rarity != "" && !validRarities[def.Rarity] {
		return fmt.Errorf(ErrFmtItemBadRarity, ErrInvalidConfig, def.Name, def.Rarity)
	}
	if def.ItemType != "" && !validItemTypes[def.ItemType] {
		return fmt.Errorf(ErrFmtItemBadType, ErrInvalidConfig, def.Name, def.ItemType)
	}
	if def.RequiredLevel < 0 {
		return fmt.Errorf(ErrFmtItemBadLevel, ErrInvalidConfig, def.Name)
	}

	return nil
}

// SyncToDatabase syncs the item configuration to the database idempotently.
// New items are inserted, changed items updated, and items missing from the file are kept.
func (l *itemLoader) SyncToDatabase(ctx context.Context, config *Config, repo repository.Item, configPath string) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	fileHash, modTime, err := fileFingerprint(configPath)
	if err != nil {
		return nil, err
	}

	hasChanged, err := hasFileChanged(ctx, repo, fileHash, modTime)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCheckFileChangeFailed, err)
	}

	if !hasChanged {
		log.Info(LogMsgConfigUnchanged, "path", configPath)
		return &SyncResult{Unchanged: true}, nil
	}

	existingItems, err := repo.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetExistingItemsFailed, err)
	}

	existingByName := make(map[string]*domain.Item, len(existingItems))
	for i := range existingItems {
		existingByName[existingItems[i].Name] = &existingItems[i]
	}

	result := &SyncResult{}
	for _, def := range config.Items {
		if err := syncOneItem(ctx, repo, def, existingByName, result); err != nil {
			return nil, err
		}
	}

	if err := repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName:   ConfigName,
		LastSyncTime: time.Now(),
		FileHash:     fileHash,
		FileModTime:  modTime,
	}); err != nil {
		log.Warn(LogMsgUpdateMetadataFailed, "error", err)
	}

	log.Info(LogMsgSyncCompleted,
		"inserted", result.ItemsInserted,
		"updated", result.ItemsUpdated,
		"skipped", result.ItemsSkipped)

	return result, nil
}

func syncOneItem(ctx context.Context, repo repository.Item, def Def, existingByName map[string]*domain.Item, result *SyncResult) error {
	log := logger.FromContext(ctx)

	item, err := def.ToItem()
	if err != nil {
		return err
	}

	existing, ok := existingByName[def.Name]
	if !ok {
		itemID, err := repo.InsertItem(ctx, &item)
		if err != nil {
			return fmt.Errorf(ErrMsgInsertItemFailed, def.Name, err)
		}
		result.ItemsInserted++
		log.Info(LogMsgInsertedItem, "name", def.Name, "id", itemID)
		return nil
	}

	if !needsUpdate(existing, &item) {
		result.ItemsSkipped++
		return nil
	}

	if err := repo.UpdateItem(ctx, existing.ID, &item); err != nil {
		return fmt.Errorf(ErrMsgUpdateItemFailed, def.Name, err)
	}
	result.ItemsUpdated++
	log.Info(LogMsgUpdatedItem, "name", def.Name, "id", existing.ID)
	return nil
}

func needsUpdate(existing, next *domain.Item) bool {
	return existing.Slot != next.Slot ||
		existing.ItemType != next.ItemType ||
		existing.Rarity != next.Rarity ||
		existing.Description != next.Description ||
		!existing.Weight.Equal(next.Weight) ||
		existing.Value != next.Value ||
		existing.Stacksize != next.Stacksize ||
		existing.MaxDurability != next.MaxDurability ||
		existing.IsRepairable != next.IsRepairable ||
		existing.Bonuses != next.Bonuses ||
		existing.RequiredLevel != next.RequiredLevel ||
		existing.Icon != next.Icon
}

func fileFingerprint(configPath string) (string, time.Time, error) {
	fileInfo, err := os.Stat(configPath)
	if err != nil {
		return "", time.Time{}, fmt.Errorf(ErrMsgStatConfigFileFailed, err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return "", time.Time{}, fmt.Errorf(ErrMsgReadForHashFailed, err)
	}

	hash := sha256.Sum256(data)
	// PostgreSQL timestamps keep microseconds
	return hex.EncodeToString(hash[:]), fileInfo.ModTime().Truncate(time.Microsecond), nil
}

// hasFileChanged compares the file fingerprint to the last recorded sync
func hasFileChanged(ctx context.Context, repo repository.Item, fileHash string, modTime time.Time) (bool, error) {
	syncMeta, err := repo.GetSyncMetadata(ctx, ConfigName)
	if err != nil {
		return false, err
	}
	if syncMeta == nil {
		return true, nil
	}

	return syncMeta.FileHash != fileHash || !syncMeta.FileModTime.Equal(modTime), nil
}
