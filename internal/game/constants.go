package game

import "time"

// Arena dimensions (pixels)
const (
	ArenaWidth  = 800
	ArenaHeight = 600
)

// Game timing
const (
	TickRate     = 60 // ticks per second
	TickInterval = time.Second / TickRate
)

// Movement
const (
	PlayerSpeed   = 6.0
	CustomerSpeed = 1.5
	BugSpeed      = 2.0
	BulletSpeed   = 10.0
	SlideAmount   = 5.0
	StuckTimeout  = 2 * time.Second
)

// Entity sizes
const (
	PlayerSize   = 50.0
	CustomerSize = 40.0
	DocSize      = 30.0
	BugSize      = 40.0
	BulletSize   = 10.0
	PowerUpSize  = 30.0
	MuzzleOffset = 30.0 // bullets leave the player this far along the facing angle
)

// Scoring
const (
	DocPoints        = 15
	SpecialDocPoints = 30
	CustomerPoints   = 50
	BugKillPoints    = 10
	DamagePenalty    = 10 // taken by TakeDamage
	ContactPenalty   = 10 // taken by a bug touching the player, on top of damage
)

// Health
const (
	MaxHealth        = 100
	CustomerHeal     = 5
	SpecialDocHeal   = 10
	BugContactDamage = 5
)

// Customer interaction
const (
	InteractionRange       = 120.0
	MagnetInteractionRange = 150.0
	ProgressComplete       = 100.0
	ProgressRate           = 1.0
	MagnetProgressRate     = 2.0
	ProgressDecay          = 0.5
)

// Shooting
const (
	FireCooldown      = 10 // ticks
	RapidFireCooldown = 5
)

// Power-ups and immunity (ticks)
const (
	PowerUpDuration  = 400
	ImmunityDuration = 180
	SpecialDocCost   = 5 // docs spent on the manual power-up
	SpeedBoostFactor = 1.5
)

// Spawning
const (
	SpawnAttempts         = 20
	PowerUpSpawnAttempts  = 1000
	SpecialDocChance      = 0.3
	DocSpawnRate          = 0.008
	CustomerSpawnRate     = 0.004
	BugSpawnRate          = 0.005
	PowerUpSpawnRate      = 0.002
	CustomerFallbackRange = 200.0
	DocFallbackRange      = 150.0
	CustomerFallbackPad   = 50.0
	DocFallbackPad        = 30.0
	WanderInterval        = 60 // ticks between forced re-headings
	WanderChance          = 0.01
)

// Initial population on start and reset
const (
	InitialCustomers = 4
	InitialDocs      = 8
	InitialBugs      = 1
)

// Deferred respawn delays (ticks)
const (
	CustomerRespawnDelay   = 2 * TickRate
	BugContactRespawnDelay = 3 * TickRate
	BugKillRespawnDelay    = 4 * TickRate
)

// Level progression
const (
	InitialLevelGoal  = 200.0
	LevelGoalFactor   = 1.4
	LevelRewardDocs   = 4
	MaxLevelBugSpawns = 8
)

// Obstacle generation
const (
	CellSize           = 50
	CenterSafeRadius   = 200.0
	StartClearRadius   = 100.0
	CornerFraction     = 0.3
	ObstacleMinSize    = 20.0
	CornerObstacleMax  = 50.0
	ScatterObstacleMax = 40.0
)
