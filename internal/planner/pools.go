package planner

import (
	"math/rand"

	"github.com/dkarlsen/fitquest/internal/domain"
)

// flavorVariant is one fixed mission template inside a category pool.
type flavorVariant struct {
	Title        string
	Description  string
	Minutes      int
	Instructions []string
}

// flavorPools holds 2-3 fixed variants per wellness category. GenerateDaily
// picks one variant per firing rule using the injected rng.
var flavorPools = map[domain.Category][]flavorVariant{
	domain.CategoryEnergy: {
		{
			Title:       "Morning Wake-Up Walk",
			Description: "Ten minutes of daylight and movement before screens",
			Minutes:     10,
			Instructions: []string{
				"Step outside within an hour of waking",
				"Walk at a comfortable pace for 10 minutes",
			},
		},
		{
			Title:       "Midday Movement Break",
			Description: "Break up the afternoon slump",
			Minutes:     5,
			Instructions: []string{
				"Stand up and stretch tall for 30 seconds",
				"Do 20 jumping jacks or march in place 2 minutes",
				"Drink a glass of water",
			},
		},
		{
			Title:       "Cold Finish Shower",
			Description: "End your shower with 30 seconds of cold water",
			Minutes:     2,
			Instructions: []string{
				"Shower as usual",
				"Turn the water cold for the final 30 seconds",
			},
		},
	},
	domain.CategoryNutrition: {
		{
			Title:       "Protein at Every Meal",
			Description: "Anchor each meal with a protein source today",
			Minutes:     5,
			Instructions: []string{
				"Plan a protein source for each meal",
				"Aim for a palm-sized portion per meal",
			},
		},
		{
			Title:       "Vegetable First",
			Description: "Start lunch and dinner with vegetables",
			Minutes:     5,
			Instructions: []string{
				"Fill half your plate with vegetables",
				"Eat them before the rest of the meal",
			},
		},
		{
			Title:       "Hydration Check",
			Description: "Hit your water target before evening",
			Minutes:     2,
			Instructions: []string{
				"Fill a bottle in the morning",
				"Finish at least 2 liters by 18:00",
			},
		},
	},
	domain.CategorySleep: {
		{
			Title:       "Screen Sunset",
			Description: "No screens in the last 30 minutes before bed",
			Minutes:     30,
			Instructions: []string{
				"Set an alarm 30 minutes before bedtime",
				"Put devices away when it rings, read or stretch instead",
			},
		},
		{
			Title:       "Consistent Lights-Out",
			Description: "Go to bed within 30 minutes of your target time",
			Minutes:     5,
			Instructions: []string{
				"Pick a lights-out time you can keep tonight",
				"Start winding down 30 minutes before it",
			},
		},
	},
	domain.CategoryStress: {
		{
			Title:       "Box Breathing",
			Description: "Four minutes of paced breathing",
			Minutes:     4,
			Instructions: []string{
				"Inhale 4 seconds, hold 4, exhale 4, hold 4",
				"Repeat for 4 minutes, eyes closed if comfortable",
			},
		},
		{
			Title:       "Worry Dump",
			Description: "Write the noise out of your head",
			Minutes:     10,
			Instructions: []string{
				"Set a 10 minute timer",
				"Write down everything on your mind, unfiltered",
				"Circle the one item you can act on tomorrow",
			},
		},
		{
			Title:       "Phone-Free Walk",
			Description: "A short walk with no inputs",
			Minutes:     15,
			Instructions: []string{
				"Leave your phone at home or in a pocket on silent",
				"Walk 15 minutes and notice your surroundings",
			},
		},
	},
	domain.CategoryVariety: {
		{
			Title:       "Try Something New",
			Description: "Ten minutes of an activity you have never done",
			Minutes:     10,
			Instructions: []string{
				"Pick any movement you have never tried",
				"Do it for 10 relaxed minutes, form over intensity",
			},
		},
		{
			Title:       "Balance Practice",
			Description: "Single-leg balance work",
			Minutes:     5,
			Instructions: []string{
				"Stand on one leg for 30 seconds per side",
				"Repeat 3 times, use a wall if needed",
			},
		},
		{
			Title:       "Dance Break",
			Description: "Two songs, full commitment",
			Minutes:     8,
			Instructions: []string{
				"Put on two songs you like",
				"Move however you want until they end",
			},
		},
	},
}

// flavorMission builds a mission from a random variant in the category pool.
func flavorMission(category domain.Category, difficulty domain.Difficulty, rng *rand.Rand) domain.Mission {
	pool := flavorPools[category]
	v := pool[rng.Intn(len(pool))]
	return domain.Mission{
		Title:        v.Title,
		Description:  v.Description,
		Category:     category,
		Difficulty:   difficulty,
		EstimatedMin: v.Minutes,
		Instructions: v.Instructions,
	}
}
