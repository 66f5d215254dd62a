package services

// timeContextSymbols maps a time of day to the keywords most useful then.
var timeContextSymbols = map[TimeContext][]string{
	ContextMorning: {
		"good morning", "breakfast", "eat", "drink", "milk", "cereal", "toast",
		"brush teeth", "get dressed", "school", "bus", "play", "happy", "sun",
		"wake up", "juice", "water", "bathroom", "wash hands", "clothes",
		"school bus", "backpack", "coat", "cold", "sunny", "clouds", "rain",
		"go to school", "get ready", "hair", "shoes", "socks", "jacket", "car",
		"walk", "run", "friends", "teacher", "classroom", "book", "pencil",
		"paper", "draw", "write", "read", "learn", "fun", "awake", "stretch",
	},
	ContextAfternoon: {
		"good afternoon", "lunch", "eat", "drink", "water", "sandwich", "play",
		"outside", "park", "swing", "slide", "friends", "home", "nap", "snack",
		"book", "read", "car", "walk", "happy", "homework", "bicycle", "scooter",
		"dog", "cat", "birds", "flowers", "tree", "grass", "sun", "hot", "warm",
		"playground", "run", "jump", "climb", "share", "listen", "talk", "sing",
		"dance", "quiet time", "rest", "tidy up", "chores", "help", "finished",
		"more", "thirsty", "hungry", "tired", "clean", "lesson", "activity",
	},
	ContextEvening: {
		"good evening", "dinner", "eat", "drink", "water", "family", "play",
		"bath", "pajamas", "book", "read", "tired", "bedtime", "moon", "stars",
		"television", "game", "finished", "more", "hungry", "story", "clean teeth",
		"bed", "soft", "warm", "quiet", "calm", "hug", "kiss", "friend", "talk",
		"laugh", "wash face", "wash body", "towel", "sleepy", "blanket", "pillow",
		"light off", "good night", "dream", "tomorrow", "today", "yesterday",
		"happy", "sad", "angry", "scared", "love", "like", "dislike", "want", "need",
		"wind down", "relax", "cuddle",
	},
	ContextNight: {
		"good night", "sleep", "bed", "tired", "dark", "moon", "stars", "dream",
		"pajamas", "book", "mom", "dad", "hug", "kiss", "quiet", "light off",
		"sleepy", "blanket", "pillow", "finished", "sleep tight", "warm", "soft",
		"stuffed animal", "darkness", "quiet time", "calm", "tomorrow", "morning",
		"rest", "snore", "eyes closed", "stay in bed", "wake up", "dreaming",
		"shhh", "turn over",
	},
	ContextDefault: {
		"hello", "goodbye", "yes", "no", "please", "thank you", "more", "finished",
		"help", "want", "eat", "drink", "play", "bathroom", "hurt", "sad", "happy",
		"tired", "mom", "dad", "need", "go", "stop", "look", "listen", "see", "hear",
		"feel", "good", "bad", "hungry", "thirsty", "angry", "scared", "love", "like",
		"dislike", "big", "small", "sorry", "excuse me", "here", "there", "up", "down",
		"in", "out", "on", "off", "less", "all done", "now", "later", "today", "tomorrow",
		"yesterday", "I", "you", "he", "she", "it", "we", "they", "my", "your",
		"same", "different",
	},
}

// standardCategories is the built-in vocabulary for daily communication,
// grouped by lowercase category name.
var standardCategories = map[string][]string{
	"core words": {
		"yes", "no", "more", "finished", "all done", "help", "want", "need", "like", "don't like",
		"stop", "go", "wait", "my turn", "your turn", "please", "thank you", "mine", "good", "bad",
		"big", "small", "same", "different", "here", "there", "now", "later",
	},
	"social": {
		"hello", "hi", "bye", "goodbye", "good morning", "good night", "how are you?",
		"I'm fine", "sorry", "excuse me", "friend", "play with me", "share", "listen", "look",
		"talk", "laugh", "smile", "wave",
	},
	"food": {
		"eat", "drink", "hungry", "thirsty", "apple", "banana", "bread", "water", "milk", "juice",
		"orange", "pizza", "cookie", "cake", "cheese", "grapes", "strawberry", "carrot",
		"chicken", "fish", "rice", "pasta", "sandwich", "soup", "snack", "breakfast", "lunch", "dinner",
		"yummy", "yucky", "more food", "finished food", "sweet", "salty", "bitter", "sour",
	},
	"drinks": {
		"drink", "thirsty", "water", "milk", "juice", "cup", "bottle", "soda", "tea", "hot chocolate",
		"more drink", "finished drink", "cold drink", "hot drink", "straw",
	},
	"people": {
		"mom", "dad", "teacher", "friend", "boy", "girl", "baby", "me", "you", "doctor",
		"brother", "sister", "grandma", "grandpa", "man", "woman", "he", "she", "they", "we",
		"family", "person", "people",
	},
	"feelings": {
		"happy", "sad", "angry", "scared", "surprised", "tired", "hurt", "sick", "excited", "love",
		"calm", "frustrated", "confused", "worried", "silly", "proud", "okay", "not okay", "feel",
		"better", "worse",
	},
	"actions": {
		"play", "go", "stop", "want", "need", "help", "look", "see", "listen", "hear", "sleep", "rest",
		"run", "walk", "jump", "read", "write", "open", "close", "give", "take", "wash", "clean",
		"sing", "dance", "draw", "color", "talk", "hug", "come", "sit", "stand", "throw", "catch",
		"turn on", "turn off", "push", "pull", "find", "make", "put", "get", "tell", "show", "start",
		"finish",
	},
	"places": {
		"home", "house", "room", "school", "park", "playground", "store", "outside", "library", "hospital",
		"bathroom", "bedroom", "kitchen", "living room", "car", "bus", "go to", "come from",
		"upstairs", "downstairs", "garden", "shop", "pool",
	},
	"toys & play": {
		"ball", "doll", "car", "blocks", "puzzle", "play", "game", "bike", "train", "plane",
		"teddy bear", "crayons", "paint", "bubbles", "book", "music", "computer", "tablet", "phone", "watch TV",
		"toy", "robot", "action figure", "board game", "card game", "build",
	},
	"clothing": {
		"shirt", "pants", "shoes", "socks", "hat", "jacket", "dress", "get dressed", "coat",
		"shorts", "sweater", "pajamas", "put on", "take off", "t-shirt", "jeans", "skirt", "boot",
	},
	"body parts": {
		"head", "eyes", "nose", "mouth", "ears", "hands", "feet", "arms", "legs", "tummy",
		"hair", "fingers", "toes", "teeth", "tongue", "hurt here", "wash hands", "brush teeth",
		"elbow", "knee", "shoulder", "face", "back",
	},
	"school items": {
		"book", "pencil", "paper", "crayons", "scissors", "glue", "backpack",
		"desk", "chair", "computer", "teacher", "student", "learn", "read", "write", "homework",
		"eraser", "ruler", "pen", "coloring book",
	},
	"colors": {
		"red", "blue", "green", "yellow", "orange", "purple", "pink", "brown", "black", "white", "gray", "color",
	},
	"numbers & quantity": {
		"one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten", "zero",
		"number", "count", "how many", "a little", "a lot", "some", "all", "more", "less", "none",
	},
	"nature & outside": {
		"tree", "flower", "sun", "moon", "star", "sky", "cloud", "rain", "snow", "wind",
		"grass", "leaf", "rock", "sand", "outside", "park", "walk", "bird", "insect", "water",
	},
	"time & schedule": {
		"time", "now", "later", "soon", "today", "yesterday", "tomorrow",
		"morning", "afternoon", "evening", "night", "day", "clock", "watch", "calendar",
		"first", "next", "then", "last", "finished", "time for", "wait", "before", "after",
		"early", "late",
	},
	"household items": {
		"table", "chair", "bed", "sofa", "lamp", "door", "window", "kitchen", "bathroom", "bedroom",
		"plate", "bowl", "fork", "spoon", "cup", "television", "phone", "computer", "light", "blanket", "pillow",
		"towel", "soap", "brush", "comb", "mirror", "toy box",
	},
	"questions": {
		"who", "what", "where", "when", "why", "how", "which", "question", "ask", "tell me",
		"is it", "can I", "do you",
	},
	"descriptors & concepts": {
		"big", "small", "little", "hot", "cold", "fast", "slow", "loud", "quiet", "good", "bad",
		"nice", "pretty", "new", "old", "long", "short", "heavy", "light", "dark", "bright",
		"soft", "hard", "wet", "dry", "clean", "dirty", "same", "different", "up", "down", "in", "out", "on", "off", "under", "over",
		"inside", "outside", "next to", "behind", "in front of", "far", "near", "all", "none", "empty", "full",
	},
	"animals": {
		"dog", "cat", "bird", "fish", "bear", "lion", "horse", "cow", "pig", "duck", "frog",
		"elephant", "monkey", "rabbit", "sheep", "turtle", "snake", "spider", "bee", "ant",
		"chicken", "mouse", "fox", "wolf",
	},
}
