package card

// Defaults substituted by the validator
const (
	DefaultName           = "My Love"
	DefaultPageTitle      = "Valentine 💝"
	DefaultFloatDuration  = "5s"
	MinFloatDuration      = 5.0
	DefaultExplosionScale = 1.5
	MinExplosionScale     = 1.0
	MaxExplosionScale     = 3.0
	DefaultVolume         = 0.5
)

// Decoration constants
const (
	// ExplosionCount is the number of hearts spawned by a celebration burst.
	ExplosionCount = 50
	// FallbackHeart is used for the burst when no heart glyphs are configured.
	FallbackHeart = "❤️"

	MaxDelay     = 5.0  // seconds
	MinDuration  = 10.0 // seconds
	DurationSpan = 20.0 // seconds
	ViewWidth    = 100.0
)

// Love meter constants
const (
	// MeterBase is the nominal maximum of the slider. Anything above it overflows.
	MeterBase = 100
	// MeterSpan maps [MeterBase, MeterBase+MeterSpan] onto 0..100% overflow.
	MeterSpan = 9900
	// OverflowFactor is the share of the viewport the overflow may grow into.
	OverflowFactor = 0.8

	HighThreshold    = 1000
	ExtremeThreshold = 5000

	MeterTransition = "width 0.3s"
)

// Element ids of the host document.
const (
	SlotTitle              = "valentineTitle"
	SlotQuestion1Text      = "question1Text"
	SlotYes1               = "yesBtn1"
	SlotNo1                = "noBtn1"
	SlotSecretAnswer       = "secretAnswerBtn"
	SlotQuestion2Text      = "question2Text"
	SlotStartText          = "startText"
	SlotNext               = "nextBtn"
	SlotQuestion3Text      = "question3Text"
	SlotYes3               = "yesBtn3"
	SlotNo3                = "noBtn3"
	SlotCelebrationTitle   = "celebrationTitle"
	SlotCelebrationMessage = "celebrationMessage"
	SlotCelebrationEmojis  = "celebrationEmojis"

	SectionCelebration = "celebration"
	// QuestionSectionPrefix is joined with the question id: "question2".
	QuestionSectionPrefix = "question"
)
