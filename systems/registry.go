package systems

// System IDs, in schedule order. Shared by the perf collector and the HUD.
const (
	SystemInput     = "input"
	SystemMovement  = "movement"
	SystemFoodSpawn = "foodSpawn"
	SystemGrowth    = "growth"
	SystemScoreText = "scoreText"
)

// SystemInfo describes a scheduled system for UI display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this system does
	Gated       bool   // Runs only while the game is playing
}

// SystemRegistry holds metadata about all systems in schedule order.
// This centralizes system naming so the UI and perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds the per-tick schedule.
// Update this when adding new systems.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: SystemInput, Name: "Input", Description: "Maps directional keys to a heading", Gated: true})
	r.Register(SystemInfo{ID: SystemMovement, Name: "Movement", Description: "Steps the snake and detects collisions", Gated: true})
	r.Register(SystemInfo{ID: SystemFoodSpawn, Name: "Food Spawn", Description: "Places food on a free cell", Gated: true})
	r.Register(SystemInfo{ID: SystemGrowth, Name: "Growth", Description: "Eats food and grows the tail", Gated: true})
	r.Register(SystemInfo{ID: SystemScoreText, Name: "Score Text", Description: "Refreshes the score label", Gated: false})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns system info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a system ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered systems.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

// IDs returns all system IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
