// Package interaction runs the popup shown when the player focuses a world
// object: describing it, talking, giving gifts and picking things up.
package interaction

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/wayfarer/internal/collection"
	"chosenoffset.com/wayfarer/internal/journal"
	"chosenoffset.com/wayfarer/internal/timer"
	"chosenoffset.com/wayfarer/internal/world"
)

// Mode is what the popup is currently showing.
type Mode int

const (
	ModeClosed Mode = iota
	ModeDescription
	ModeDialogue
	ModeGiftMenu
	ModeReaction
)

func (m Mode) String() string {
	switch m {
	case ModeDescription:
		return "description"
	case ModeDialogue:
		return "dialogue"
	case ModeGiftMenu:
		return "gift-menu"
	case ModeReaction:
		return "reaction"
	default:
		return "closed"
	}
}

// Action identifies a popup button.
type Action string

const (
	ActionPickup  Action = "pickup"
	ActionTalk    Action = "talk"
	ActionGift    Action = "gift"
	ActionExamine Action = "examine"
	ActionGive    Action = "give" // Gift menu entry, ItemID set
	ActionCancel  Action = "cancel"
	ActionClose   Action = "close"
)

// Option is one button in the popup.
type Option struct {
	Action Action
	Label  string
	ItemID string
}

// Session is the popup's visible state. Generation changes every time a
// new popup instance opens.
type Session struct {
	Object     *world.Object
	Mode       Mode
	Title      string
	Content    string
	Options    []Option
	Generation uint64
}

// Sound effect names.
const (
	SfxPickup = "pickup"
	SfxGift   = "gift"
	SfxTalk   = "talk"
)

// Collaborators. The game wires the concrete types in.
type (
	Collection interface {
		AddItem(item collection.Item) bool
		DecreaseQuantity(id string) bool
		Items() []collection.Item
		ItemByID(id string) (collection.Item, bool)
		HasItems() bool
	}

	Journal interface {
		AddEntry(e journal.Entry) bool
	}

	World interface {
		RemoveObject(id string) bool
	}

	Sounds interface {
		PlaySfx(name string)
	}

	Notifier interface {
		Notify(message string)
	}

	Scheduler interface {
		After(delay time.Duration, owner timer.Owner, fn func()) timer.TaskID
		CancelOwner(owner timer.Owner) int
	}
)

// Deps bundles everything a Machine talks to.
type Deps struct {
	World      World
	Collection Collection
	Journal    Journal
	Sounds     Sounds
	Notifier   Notifier
	Scheduler  Scheduler
	Reactions  *ReactionSet
	Rand       *rand.Rand
	Log        logrus.FieldLogger

	// ReactionLinger closes a gift reaction on its own after this long.
	// Zero leaves it open until dismissed.
	ReactionLinger time.Duration
}

// Machine is the popup state machine.
type Machine struct {
	deps    Deps
	session Session
	gen     uint64
}

// New creates a closed machine.
func New(deps Deps) *Machine {
	if deps.Reactions == nil {
		deps.Reactions = DefaultReactions()
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if deps.Log == nil {
		deps.Log = logrus.StandardLogger()
	}
	return &Machine{deps: deps}
}

// Session returns a copy of the popup state.
func (m *Machine) Session() Session {
	s := m.session
	s.Options = append([]Option(nil), m.session.Options...)
	return s
}

// IsOpen reports whether a popup is showing.
func (m *Machine) IsOpen() bool {
	return m.session.Mode != ModeClosed
}

// Focused returns the object the popup is about, or nil.
func (m *Machine) Focused() *world.Object {
	return m.session.Object
}

// Focus opens a new popup describing obj, replacing any open one.
func (m *Machine) Focus(obj *world.Object) {
	if obj == nil {
		return
	}
	if m.IsOpen() {
		m.cancelTasks()
	}
	m.gen++
	m.session.Generation = m.gen
	m.describe(obj)

	m.deps.Log.WithFields(logrus.Fields{
		"object":     obj.ID,
		"generation": m.gen,
	}).Debug("Popup opened")
}

func (m *Machine) describe(obj *world.Object) {
	m.session.Object = obj
	m.session.Mode = ModeDescription
	m.session.Title = obj.Name
	m.session.Content = obj.Description

	var opts []Option
	if obj.CanPickup {
		opts = append(opts, Option{Action: ActionPickup, Label: "Pick up"})
	}
	if obj.CanTalk {
		opts = append(opts, Option{Action: ActionTalk, Label: "Talk"})
	}
	if obj.AcceptsGifts && m.deps.Collection.HasItems() {
		opts = append(opts, Option{Action: ActionGift, Label: "Give a gift"})
	}
	opts = append(opts, Option{Action: ActionExamine, Label: "Examine"})
	m.session.Options = opts
}

// ChooseIndex activates the i-th option of the current popup.
func (m *Machine) ChooseIndex(i int) bool {
	if i < 0 || i >= len(m.session.Options) {
		return false
	}
	return m.Choose(m.session.Options[i])
}

// Choose activates an option. Options that do not apply to the focused
// object or the current mode are ignored.
func (m *Machine) Choose(opt Option) bool {
	obj := m.session.Object
	if obj == nil {
		return false
	}

	switch opt.Action {
	case ActionPickup:
		if m.session.Mode != ModeDescription || !obj.CanPickup {
			return false
		}
		m.pickup(obj)
		m.close()
	case ActionTalk:
		if m.session.Mode != ModeDescription || !obj.CanTalk {
			return false
		}
		m.talk(obj)
	case ActionGift:
		if m.session.Mode != ModeDescription || !obj.AcceptsGifts {
			return false
		}
		m.giftMenu(obj)
	case ActionGive:
		return m.SelectGift(opt.ItemID)
	case ActionCancel:
		if m.session.Mode != ModeGiftMenu {
			return false
		}
		m.describe(obj)
	case ActionExamine:
		if m.session.Mode != ModeDescription {
			return false
		}
		m.deps.Journal.AddEntry(journal.Entry{
			Type:    journal.TypeExamine,
			Title:   fmt.Sprintf("Examined %s", obj.Name),
			Content: obj.Description,
		})
		m.close()
	case ActionClose:
		m.close()
	default:
		return false
	}
	return true
}

func (m *Machine) talk(obj *world.Object) {
	line := obj.Dialogue
	if line == "" {
		line = "..."
	}
	m.session.Mode = ModeDialogue
	m.session.Content = line
	m.session.Options = []Option{{Action: ActionClose, Label: "Close"}}

	m.deps.Journal.AddEntry(journal.Entry{
		Type:    journal.TypeConversation,
		Title:   fmt.Sprintf("Conversation with %s", obj.Name),
		Content: line,
	})
	m.playSfx(SfxTalk)
}

func (m *Machine) giftMenu(obj *world.Object) {
	m.session.Mode = ModeGiftMenu
	m.session.Content = "Choose a gift to give"

	items := m.deps.Collection.Items()
	opts := make([]Option, 0, len(items)+1)
	for _, it := range items {
		label := it.Name
		if it.Quantity > 1 {
			label = fmt.Sprintf("%s ×%d", it.Name, it.Quantity)
		}
		opts = append(opts, Option{Action: ActionGive, Label: label, ItemID: it.ID})
	}
	opts = append(opts, Option{Action: ActionCancel, Label: "Cancel"})
	m.session.Options = opts
}

// SelectGift gives a collected item to the focused object. The reaction is
// the object's own line for that item when it has one, otherwise a random
// line for the item's type. One of the item is used up.
func (m *Machine) SelectGift(itemID string) bool {
	obj := m.session.Object
	if obj == nil || m.session.Mode != ModeGiftMenu || !obj.AcceptsGifts {
		return false
	}
	item, ok := m.deps.Collection.ItemByID(itemID)
	if !ok {
		return false
	}

	reaction, ok := obj.GiftReactions[itemID]
	if !ok || reaction == "" {
		itemType := item.ItemType
		if itemType == "" || itemType == collection.UnknownType {
			itemType = collection.InferType(item.Image, item.Name)
		}
		reaction = m.deps.Reactions.Pick(m.deps.Rand, itemType)
	}

	m.deps.Collection.DecreaseQuantity(itemID)

	m.session.Mode = ModeReaction
	m.session.Title = obj.Name
	m.session.Content = reaction
	m.session.Options = []Option{{Action: ActionClose, Label: "Close"}}

	m.deps.Journal.AddEntry(journal.Entry{
		Type:    journal.TypeGift,
		Title:   fmt.Sprintf("Gave %s to %s", item.Name, obj.Name),
		Content: fmt.Sprintf("Reaction: %s", reaction),
	})
	m.notify(fmt.Sprintf("You gave %s to %s", item.Name, obj.Name))
	m.playSfx(SfxGift)

	if m.deps.ReactionLinger > 0 && m.deps.Scheduler != nil {
		gen := m.gen
		m.deps.Scheduler.After(m.deps.ReactionLinger, m.owner(), func() {
			if m.session.Generation == gen && m.session.Mode == ModeReaction {
				m.close()
			}
		})
	}

	m.deps.Log.WithFields(logrus.Fields{
		"object": obj.ID,
		"item":   itemID,
	}).Info("Gift given")
	return true
}

// Collect picks obj up without opening a popup.
func (m *Machine) Collect(obj *world.Object) bool {
	if obj == nil || !obj.CanPickup {
		return false
	}
	if !m.pickup(obj) {
		return false
	}
	m.notify(fmt.Sprintf("Picked up %s", obj.Name))
	return true
}

func (m *Machine) pickup(obj *world.Object) bool {
	added := m.deps.Collection.AddItem(collection.Item{
		ID:          obj.ID,
		Name:        obj.Name,
		Description: obj.Description,
		Image:       obj.Image,
	})
	if !added {
		m.deps.Log.WithField("object", obj.ID).Warn("Object could not be collected")
		return false
	}

	m.deps.World.RemoveObject(obj.ID)
	m.deps.Journal.AddEntry(journal.Entry{
		Type:    journal.TypeItem,
		Title:   fmt.Sprintf("Found %s", obj.Name),
		Content: obj.Description,
	})
	m.playSfx(SfxPickup)

	m.deps.Log.WithField("object", obj.ID).Info("Item collected")
	return true
}

// Dismiss closes the popup from outside, e.g. a click elsewhere.
func (m *Machine) Dismiss() {
	if !m.IsOpen() {
		return
	}
	m.close()
}

func (m *Machine) close() {
	m.cancelTasks()
	m.session = Session{Generation: m.gen}
}

func (m *Machine) cancelTasks() {
	if m.deps.Scheduler != nil {
		m.deps.Scheduler.CancelOwner(m.owner())
	}
}

func (m *Machine) owner() timer.Owner {
	return timer.Owner(fmt.Sprintf("popup-%d", m.gen))
}

func (m *Machine) notify(msg string) {
	if m.deps.Notifier != nil {
		m.deps.Notifier.Notify(msg)
	}
}

func (m *Machine) playSfx(name string) {
	if m.deps.Sounds != nil {
		m.deps.Sounds.PlaySfx(name)
	}
}
