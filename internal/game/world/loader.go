package world

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yuin/gopher-lua/parse"
	"gopkg.in/yaml.v3"
)

// Item kinds accepted in world files.
const (
	ItemPlain      = "plain"
	ItemWeapon     = "weapon"
	ItemConsumable = "consumable"
	ItemScripted   = "scripted"
)

// worldFile is the top-level YAML structure for world files.
type worldFile struct {
	World Blueprint `yaml:"world"`
}

// Blueprint is a validated, immutable world definition. Build turns it into a
// live world; it may be built any number of times.
type Blueprint struct {
	Name      string    `yaml:"name" validate:"required"`
	StartRoom string    `yaml:"start_room" validate:"required"`
	Goal      GoalDef   `yaml:"goal"`
	Rooms     []RoomDef `yaml:"rooms" validate:"required,min=1,dive"`
}

// GoalDef names the item that wins the game when carried into Room.
type GoalDef struct {
	Item string `yaml:"item" validate:"required_with=Room"`
	Room string `yaml:"room" validate:"required_with=Item"`
}

// RoomDef is the YAML representation of a room.
type RoomDef struct {
	ID      string            `yaml:"id" validate:"required"`
	Name    string            `yaml:"name" validate:"required"`
	Locked  bool              `yaml:"locked"`
	Key     string            `yaml:"key"`
	Exits   map[string]string `yaml:"exits" validate:"dive,keys,direction,endkeys,required"`
	Items   []ItemDef         `yaml:"items" validate:"dive"`
	Enemies []EnemyDef        `yaml:"enemies" validate:"dive"`
}

// ItemDef is the YAML representation of an item.
type ItemDef struct {
	Name   string `yaml:"name" validate:"required"`
	Kind   string `yaml:"kind" validate:"omitempty,oneof=plain weapon consumable scripted"`
	Bonus  int    `yaml:"bonus"`
	Heal   int    `yaml:"heal" validate:"gte=0"`
	Script string `yaml:"script" validate:"required_if=Kind scripted"`
}

// EnemyDef is the YAML representation of an enemy. Zero Health or Damage
// selects the kind's default.
type EnemyDef struct {
	Name      string        `yaml:"name" validate:"required"`
	Kind      string        `yaml:"kind" validate:"omitempty,oneof=plain werewolf vampire custom"`
	Health    int           `yaml:"health" validate:"gte=0"`
	Damage    int           `yaml:"damage" validate:"gte=0"`
	Guards    string        `yaml:"guards"`
	Modifiers []ModifierDef `yaml:"modifiers" validate:"dive"`
}

// ModifierDef adds Delta to incoming damage per attacker slot holding Item.
type ModifierDef struct {
	Item  string `yaml:"item" validate:"required"`
	Delta int    `yaml:"delta"`
}

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("direction", func(fl validator.FieldLevel) bool {
		_, err := ParseDirection(fl.Field().String())
		return err == nil
	})
	return v
}

// LoadBlueprintFromFile reads and validates a world YAML file.
//
// Precondition: path must point to a YAML world file.
// Postcondition: Returns a validated Blueprint or a non-nil error.
func LoadBlueprintFromFile(path string) (*Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading world file %s: %w", path, err)
	}
	return LoadBlueprintFromBytes(data)
}

// LoadBlueprintFromBytes parses and validates a world from YAML bytes.
//
// Postcondition: Returns a validated Blueprint or a non-nil error.
func LoadBlueprintFromBytes(data []byte) (*Blueprint, error) {
	var file worldFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing world YAML: %w", err)
	}
	bp := file.World
	if err := bp.Validate(); err != nil {
		return nil, fmt.Errorf("validating world: %w", err)
	}
	return &bp, nil
}

// Validate checks field constraints and cross references.
//
// Postcondition: Returns nil if valid, or an error listing every violation.
func (b *Blueprint) Validate() error {
	if err := structValidator.Struct(b); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
		}
		return errors.New(strings.Join(msgs, "; "))
	}

	var errs []string
	rooms := make(map[string]*RoomDef, len(b.Rooms))
	for i := range b.Rooms {
		rd := &b.Rooms[i]
		if _, dup := rooms[rd.ID]; dup {
			errs = append(errs, fmt.Sprintf("room %q: duplicate id", rd.ID))
		}
		rooms[rd.ID] = rd
	}
	if _, ok := rooms[b.StartRoom]; !ok {
		errs = append(errs, fmt.Sprintf("start_room %q: %v", b.StartRoom, ErrUnknownRoom))
	}
	if b.Goal.Room != "" {
		if _, ok := rooms[b.Goal.Room]; !ok {
			errs = append(errs, fmt.Sprintf("goal room %q: %v", b.Goal.Room, ErrUnknownRoom))
		}
	}
	goalFound := b.Goal.Item == ""
	implied := make(map[side]string)
	for _, rd := range b.Rooms {
		errs = append(errs, rd.validateRefs(rooms)...)
		errs = append(errs, rd.claimReverse(rooms, implied)...)
		for _, id := range rd.Items {
			if strings.EqualFold(id.Name, b.Goal.Item) {
				goalFound = true
			}
		}
	}
	if !goalFound {
		errs = append(errs, fmt.Sprintf("goal item %q is not placed in any room", b.Goal.Item))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// side is one direction of one room.
type side struct {
	room string
	dir  Direction
}

// claimReverse records the reverse link each exit implies on its target and
// reports a target side already claimed by another room. Sides the target
// declares itself are checked by validateRefs.
func (rd *RoomDef) claimReverse(rooms map[string]*RoomDef, implied map[side]string) []string {
	var errs []string
	for _, key := range sortedExits(rd.Exits) {
		target := rd.Exits[key]
		dir, _ := ParseDirection(key)
		other, ok := rooms[target]
		if !ok || other.ID == rd.ID {
			continue
		}
		if _, set := other.exit(dir.Opposite()); set {
			continue
		}
		s := side{room: target, dir: dir.Opposite()}
		if prev, claimed := implied[s]; claimed && prev != rd.ID {
			errs = append(errs, fmt.Sprintf("room %q: exit %s to %q conflicts with %q's %s exit to %q",
				rd.ID, dir, target, prev, dir, target))
			continue
		}
		implied[s] = rd.ID
	}
	return errs
}

func sortedExits(exits map[string]string) []string {
	keys := make([]string, 0, len(exits))
	for key := range exits {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (rd *RoomDef) validateRefs(rooms map[string]*RoomDef) []string {
	var errs []string
	for _, key := range sortedExits(rd.Exits) {
		target := rd.Exits[key]
		dir, _ := ParseDirection(key)
		other, ok := rooms[target]
		if !ok {
			errs = append(errs, fmt.Sprintf("room %q: exit %s: %v %q", rd.ID, dir, ErrUnknownRoom, target))
			continue
		}
		if other.ID == rd.ID {
			errs = append(errs, fmt.Sprintf("room %q: exit %s leads to itself", rd.ID, dir))
			continue
		}
		if back, set := other.exit(dir.Opposite()); set && back != rd.ID {
			errs = append(errs, fmt.Sprintf("room %q: exit %s to %q conflicts with %q's %s exit to %q",
				rd.ID, dir, target, target, dir.Opposite(), back))
		}
	}
	if seen := duplicateDirections(rd.Exits); seen != "" {
		errs = append(errs, fmt.Sprintf("room %q: direction %s listed twice", rd.ID, seen))
	}

	names := make(map[string]int, len(rd.Items))
	for _, id := range rd.Items {
		names[strings.ToLower(id.Name)]++
		if id.Kind == ItemScripted {
			if _, err := parse.Parse(strings.NewReader(id.Script), id.Name); err != nil {
				errs = append(errs, fmt.Sprintf("room %q: item %q: script: %v", rd.ID, id.Name, err))
			}
		}
	}
	guarded := make(map[string]string)
	for _, ed := range rd.Enemies {
		if ed.Guards == "" {
			continue
		}
		key := strings.ToLower(ed.Guards)
		if names[key] == 0 {
			errs = append(errs, fmt.Sprintf("room %q: enemy %q guards %q which is not in the room", rd.ID, ed.Name, ed.Guards))
		}
		if prev, dup := guarded[key]; dup {
			errs = append(errs, fmt.Sprintf("room %q: %q is guarded by both %q and %q", rd.ID, ed.Guards, prev, ed.Name))
		}
		guarded[key] = ed.Name
	}
	return errs
}

// exit returns the target room id in direction d, accepting long or short keys.
func (rd *RoomDef) exit(d Direction) (string, bool) {
	for key, target := range rd.Exits {
		if dir, err := ParseDirection(key); err == nil && dir == d {
			return target, true
		}
	}
	return "", false
}

func duplicateDirections(exits map[string]string) Direction {
	seen := make(map[Direction]bool, len(exits))
	for _, key := range sortedExits(exits) {
		dir, _ := ParseDirection(key)
		if seen[dir] {
			return dir
		}
		seen[dir] = true
	}
	return ""
}
