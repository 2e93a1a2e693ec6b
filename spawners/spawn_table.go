package spawners

import (
	"math/rand"

	"ebiten-korin/ecs"
)

// SpawnTable defines a table of possible templates and their spawn chances
type SpawnTable struct {
	Entries []SpawnTableEntry
}

// SpawnTableEntry represents a single entry in a spawn table
type SpawnTableEntry struct {
	TemplateID string
	Weight     int
	MinCount   int
	MaxCount   int
}

// NewSpawnTable creates a new spawn table
func NewSpawnTable(entries []SpawnTableEntry) *SpawnTable {
	return &SpawnTable{
		Entries: entries,
	}
}

// Generate rolls every entry once and spawns the chosen templates. It stops
// at the first spawn error and returns the entities spawned so far.
func (st *SpawnTable) Generate(spawner *EntitySpawner, rng *rand.Rand) ([]ecs.Entity, error) {
	var spawned []ecs.Entity

	// Calculate total weight
	totalWeight := 0
	for _, entry := range st.Entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return nil, nil
	}

	for _, entry := range st.Entries {
		if rng.Intn(totalWeight) >= entry.Weight {
			continue
		}
		// Determine how many of this template to spawn
		count := entry.MinCount
		if entry.MaxCount > entry.MinCount {
			count += rng.Intn(entry.MaxCount - entry.MinCount + 1)
		}

		for i := 0; i < count; i++ {
			e, err := spawner.Spawn(entry.TemplateID)
			if err != nil {
				return spawned, err
			}
			spawned = append(spawned, e)
		}
	}

	return spawned, nil
}
