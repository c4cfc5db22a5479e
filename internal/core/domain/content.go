package domain

// PoolKind names the content pools the selection engine draws from.
type PoolKind string

// Content pools.
const (
	PoolQuotes   PoolKind = "quotes"
	PoolGuidance PoolKind = "guidance"
	PoolPrompts  PoolKind = "prompts"
	PoolClosings PoolKind = "closings"
)

// Trigger is a categorical tag a content item responds to. Each
// trigger maps to a predicate over the activation context; the
// "general" trigger matches every context.
type Trigger string

// Recognised triggers.
const (
	TriggerGeneral      Trigger = "general"
	TriggerOpposition   Trigger = "opposition"
	TriggerSaturn       Trigger = "saturn"
	TriggerChiron       Trigger = "chiron"
	TriggerNodeAxis     Trigger = "node_axis"
	TriggerRelationship Trigger = "relationship"
	TriggerRetrograde   Trigger = "retrograde"
	TriggerMars         Trigger = "mars"
	TriggerVenus        Trigger = "venus"
	TriggerStellium     Trigger = "stellium"
	TriggerNewMoon      Trigger = "new_moon"
	TriggerFullMoon     Trigger = "full_moon"
	TriggerWaxingMoon   Trigger = "waxing_moon"
	TriggerWaningMoon   Trigger = "waning_moon"
	TriggerDeepDay      Trigger = "deep_day"
	TriggerReflective   Trigger = "reflective"
)

// Tone is an item's emotional register.
type Tone string

// Content tones.
const (
	ToneNeutral    Tone = "neutral"
	ToneProtective Tone = "protective"
	ToneChallenge  Tone = "challenge"
	ToneRelease    Tone = "release"
)

// ContentItem is one pre-written piece of prose in a pool. Items are
// static data: loaded once at process start, never mutated.
type ContentItem struct {
	// ID is the stable identifier, unique within the corpus.
	ID string

	// Body is the prose text.
	Body string

	// Triggers are the context tags this item responds to.
	Triggers []Trigger

	// Intensity is the day-intensity tier the item is written for.
	Intensity DayIntensity

	// Tone is the item's emotional register.
	Tone Tone

	// House is an optional house-number affinity, 0 when absent.
	House int
}

// HasTone returns true if the item carries the given tone.
func (i ContentItem) HasTone(t Tone) bool {
	return i.Tone == t
}

// ContentPool is an immutable ordered collection of items. Pool order
// is load-bearing: it breaks scoring ties.
type ContentPool struct {
	// Kind names the pool.
	Kind PoolKind

	// Items in corpus order.
	Items []ContentItem
}

// Len returns the number of items in the pool.
func (p ContentPool) Len() int {
	return len(p.Items)
}

// WithTone returns the sub-pool of items carrying the given tone,
// preserving corpus order.
func (p ContentPool) WithTone(t Tone) ContentPool {
	sub := ContentPool{Kind: p.Kind}
	for _, item := range p.Items {
		if item.HasTone(t) {
			sub.Items = append(sub.Items, item)
		}
	}
	return sub
}
