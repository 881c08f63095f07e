package content

import "github.com/imposterpurge/engine/internal/models"

// TabooConstraints is the fixed phrase list a taboo session draws from.
var TabooConstraints = []string{
	"No verbs allowed",
	"Must mention a color",
	"Must mention a number",
	"No words starting with 'T'",
	"One-word description only",
	"Must mention an animal",
	"No body parts allowed",
	"Must use a metaphor",
	"Speak in high-pitched voice",
	"Must mention a fruit",
	"No adjectives allowed",
	"Must mention a brand name",
}

// InvestmentCategories are the budget buckets for Investment mode.
var InvestmentCategories = []string{"Safety", "Comfort", "Technology", "Aesthetic"}

// DefaultWordSets ships with the engine so a fresh install can always
// start a word-based session.
func DefaultWordSets() []models.WordSet {
	return []models.WordSet{
		{
			ID: "default-words", Name: "Everyday Objects",
			Pairs: []models.WordPair{
				{WordA: "Apple", WordB: "Pear"},
				{WordA: "Laptop", WordB: "Tablet"},
				{WordA: "Bicycle", WordB: "Scooter"},
				{WordA: "Coffee", WordB: "Tea"},
				{WordA: "Cat", WordB: "Tiger"},
				{WordA: "Pizza", WordB: "Burger"},
				{WordA: "Sun", WordB: "Moon"},
				{WordA: "Soccer", WordB: "Basketball"},
				{WordA: "Airplane", WordB: "Helicopter"},
				{WordA: "Guitar", WordB: "Violin"},
			},
		},
		{
			ID: "words-abstract", Name: "Abstract Concepts",
			Pairs: []models.WordPair{
				{WordA: "Love", WordB: "Affection"},
				{WordA: "Betrayal", WordB: "Treachery"},
				{WordA: "Freedom", WordB: "Liberty"},
				{WordA: "Justice", WordB: "Equity"},
				{WordA: "Chaos", WordB: "Disorder"},
				{WordA: "Honor", WordB: "Integrity"},
				{WordA: "Silence", WordB: "Stillness"},
				{WordA: "Power", WordB: "Influence"},
				{WordA: "Time", WordB: "Duration"},
				{WordA: "Destiny", WordB: "Fate"},
			},
		},
		{
			ID: "words-animals", Name: "Animals & Nature",
			Pairs: []models.WordPair{
				{WordA: "Lion", WordB: "Tiger"},
				{WordA: "Dolphin", WordB: "Whale"},
				{WordA: "Rose", WordB: "Tulip"},
				{WordA: "Forest", WordB: "Jungle"},
				{WordA: "Eagle", WordB: "Falcon"},
				{WordA: "Mountain", WordB: "Hill"},
				{WordA: "Shark", WordB: "Orca"},
				{WordA: "Spider", WordB: "Scorpion"},
				{WordA: "Oak Tree", WordB: "Pine Tree"},
				{WordA: "Butterfly", WordB: "Moth"},
			},
		},
		{
			ID: "words-food", Name: "Food & Drinks",
			Pairs: []models.WordPair{
				{WordA: "Hamburger", WordB: "Hot Dog"},
				{WordA: "Sushi", WordB: "Sashimi"},
				{WordA: "Coffee", WordB: "Hot Chocolate"},
				{WordA: "Pasta", WordB: "Lasagna"},
				{WordA: "Milkshake", WordB: "Smoothie"},
				{WordA: "Steak", WordB: "Pork Chop"},
				{WordA: "Taco", WordB: "Burrito"},
				{WordA: "Ice Cream", WordB: "Frozen Yogurt"},
				{WordA: "Whiskey", WordB: "Brandy"},
				{WordA: "Coca-Cola", WordB: "Pepsi"},
			},
		},
		{
			ID: "words-brands", Name: "Global Brands",
			Pairs: []models.WordPair{
				{WordA: "Apple", WordB: "Samsung"},
				{WordA: "Nike", WordB: "Adidas"},
				{WordA: "McDonald's", WordB: "Burger King"},
				{WordA: "Google", WordB: "Microsoft"},
				{WordA: "Visa", WordB: "Mastercard"},
				{WordA: "Netflix", WordB: "Disney+"},
				{WordA: "Starbucks", WordB: "Dunkin'"},
				{WordA: "BMW", WordB: "Mercedes"},
				{WordA: "Sony", WordB: "Nintendo"},
				{WordA: "Ferrari", WordB: "Lamborghini"},
			},
		},
		{
			ID: "words-sports", Name: "Sports & Games",
			Pairs: []models.WordPair{
				{WordA: "Football", WordB: "Rugby"},
				{WordA: "Tennis", WordB: "Badminton"},
				{WordA: "Baseball", WordB: "Cricket"},
				{WordA: "Golf", WordB: "Mini Golf"},
				{WordA: "Boxing", WordB: "MMA"},
				{WordA: "Chess", WordB: "Checkers"},
				{WordA: "Skiing", WordB: "Snowboarding"},
				{WordA: "Surfing", WordB: "Windsurfing"},
				{WordA: "Poker", WordB: "Blackjack"},
				{WordA: "Bowling", WordB: "Darts"},
			},
		},
		{
			ID: "words-jobs", Name: "Jobs & Crafts",
			Pairs: []models.WordPair{
				{WordA: "Doctor", WordB: "Nurse"},
				{WordA: "Carpenter", WordB: "Blacksmith"},
				{WordA: "Artist", WordB: "Designer"},
				{WordA: "Pilot", WordB: "Captain"},
				{WordA: "Chef", WordB: "Baker"},
				{WordA: "Lawyer", WordB: "Judge"},
				{WordA: "Plumber", WordB: "Electrician"},
				{WordA: "Police", WordB: "Soldier"},
				{WordA: "Firefighter", WordB: "Paramedic"},
				{WordA: "Farmer", WordB: "Gardener"},
			},
		},
		{
			ID: "words-education", Name: "School & Education",
			Pairs: []models.WordPair{
				{WordA: "Math", WordB: "Physics"},
				{WordA: "History", WordB: "Geography"},
				{WordA: "Pencil", WordB: "Pen"},
				{WordA: "Notebook", WordB: "Binder"},
				{WordA: "Teacher", WordB: "Professor"},
				{WordA: "Backpack", WordB: "Briefcase"},
				{WordA: "Exam", WordB: "Quiz"},
				{WordA: "Library", WordB: "Bookstore"},
				{WordA: "Globe", WordB: "Map"},
				{WordA: "Graduation", WordB: "Orientation"},
			},
		},
		{
			ID: "words-tech", Name: "Technology",
			Pairs: []models.WordPair{
				{WordA: "Browser", WordB: "Application"},
				{WordA: "Keyboard", WordB: "Mouse"},
				{WordA: "Wi-Fi", WordB: "Bluetooth"},
				{WordA: "Android", WordB: "iOS"},
				{WordA: "Server", WordB: "Database"},
				{WordA: "Virtual Reality", WordB: "Augmented Reality"},
				{WordA: "Podcast", WordB: "Audiobook"},
				{WordA: "Messenger", WordB: "WhatsApp"},
				{WordA: "Robot", WordB: "Cyborg"},
				{WordA: "Encryption", WordB: "Password"},
			},
		},
		{
			ID: "words-pop", Name: "Pop Culture",
			Pairs: []models.WordPair{
				{WordA: "Batman", WordB: "Superman"},
				{WordA: "Marvel", WordB: "DC"},
				{WordA: "Star Wars", WordB: "Star Trek"},
				{WordA: "Harry Potter", WordB: "Lord of the Rings"},
				{WordA: "Spider-Man", WordB: "Iron Man"},
				{WordA: "Vampire", WordB: "Werewolf"},
				{WordA: "Zombie", WordB: "Ghost"},
				{WordA: "Mickey Mouse", WordB: "Bugs Bunny"},
				{WordA: "Pokemon", WordB: "Digimon"},
				{WordA: "Ninja", WordB: "Samurai"},
			},
		},
	}
}

// DefaultScenarioSets returns the built-in Scheme/Investment material.
func DefaultScenarioSets() []models.ScenarioSet {
	return []models.ScenarioSet{
		{
			ID: "default", Name: "Urban Development",
			Projects: []string{
				"Dog Park", "Karaoke Bar", "Cemetery", "Public Library",
				"Shopping Mall", "Skate Park", "Community Garden",
				"Underground Bunker", "Casino", "Spa Center",
			},
			Locations: []string{
				"School Gym", "Police Station", "Mall Food Court",
				"Abandoned Asylum", "Moon Base", "Luxury Yacht",
				"Retirement Home", "Fire Station", "Subway Platform",
			},
			Catches: []string{
				"No shoes allowed", "Only for kids", "100% Silent",
				"Costumes mandatory", "Must whisper", "Bring your own light",
				"Cash only", "AI robots only", "Strictly formal wear",
			},
		},
	}
}

// DefaultInquestSets returns the built-in Inquest scenarios.
func DefaultInquestSets() []models.InquestSet {
	return []models.InquestSet{
		{
			ID: "default-inquest", Name: "Urban Legends",
			Scenarios: []models.InquestScenario{
				{
					ID:          "iq-1",
					RealProject: "Nightclub",
					FakeProject: "Gym",
					Location:    "Underground Bunker",
					Options:     []string{"Loud thumping bass", "Clanking metal and grunts", "Total silence", "People whispering"},
					Questions:   []string{"What is the primary sound?", "What is the main smell?", "What is the lighting like?", "What do people wear?"},
				},
				{
					ID:          "iq-2",
					RealProject: "Library",
					FakeProject: "Church",
					Location:    "Old Cathedral",
					Options:     []string{"Smell of old paper", "Incense and wax", "Freshly baked bread", "Damp earth"},
					Questions:   []string{"What do you smell?", "What is the main activity?", "Who is the person in charge?", "What is on the walls?"},
				},
			},
		},
	}
}

// DefaultVirusSets returns the built-in Virus Purge word pool.
func DefaultVirusSets() []models.VirusSet {
	return []models.VirusSet{
		{
			ID: "virus-default", Name: "Cyber Core",
			Words: []string{
				"Encryption", "Firewall", "Protocol", "Archive", "Database",
				"Malware", "Trojan", "Network", "Gateway", "Mainframe",
				"Satellite", "Override", "Decryption", "Backdoor", "Neural",
				"Quantum", "Bitrate", "Latency", "Fiber", "Voltage",
				"Subnet", "Bandwidth", "Kernel", "Assembly", "Script",
				"Silicon", "Motherboard", "Terminal", "Console", "Registry",
			},
		},
	}
}

// Fallback material used when the content provider is unavailable.
var (
	fallbackDistractors = []string{"Library", "Park", "Museum"}
	fallbackNoiseWords  = []string{"System", "Code", "Glitch"}
	localNoiseWords     = []string{"System", "Code", "Breach"}
)
