package aiquiz

var fallbackQuizzes = map[string][]Question{
	"Historical Events": {
		{
			ID:            1,
			Question:      "When did World War II end?",
			Options:       []string{"1943", "1944", "1945", "1946"},
			CorrectAnswer: 2,
			Explanation:   "World War II ended in 1945 with the surrender of Germany in May and Japan in September.",
		},
		{
			ID:            2,
			Question:      "Who was the first President of the United States?",
			Options:       []string{"Thomas Jefferson", "John Adams", "George Washington", "Benjamin Franklin"},
			CorrectAnswer: 2,
			Explanation:   "George Washington was the first President of the United States, serving from 1789 to 1797.",
		},
		{
			ID:            3,
			Question:      "In what year did the Berlin Wall fall?",
			Options:       []string{"1987", "1988", "1989", "1990"},
			CorrectAnswer: 2,
			Explanation:   "The Berlin Wall fell on November 9, 1989, marking the end of the Cold War.",
		},
		{
			ID:            4,
			Question:      "Who was the first Emperor of Rome?",
			Options:       []string{"Julius Caesar", "Augustus", "Nero", "Caligula"},
			CorrectAnswer: 1,
			Explanation:   "Augustus was the first Emperor of Rome, ruling from 27 BC to 14 AD.",
		},
		{
			ID:            5,
			Question:      "When did the American Civil War begin?",
			Options:       []string{"1860", "1861", "1862", "1863"},
			CorrectAnswer: 1,
			Explanation:   "The American Civil War began in 1861 with the attack on Fort Sumter.",
		},
	},
	"Science and Technology": {
		{
			ID:            1,
			Question:      "What is the chemical symbol for gold?",
			Options:       []string{"Ag", "Au", "Fe", "Cu"},
			CorrectAnswer: 1,
			Explanation:   "Au is the chemical symbol for gold, from the Latin word 'aurum'.",
		},
		{
			ID:            2,
			Question:      "Which planet is known as the Red Planet?",
			Options:       []string{"Venus", "Mars", "Jupiter", "Saturn"},
			CorrectAnswer: 1,
			Explanation:   "Mars is known as the Red Planet due to its reddish appearance from iron oxide on its surface.",
		},
		{
			ID:            3,
			Question:      "What is the largest organ in the human body?",
			Options:       []string{"Heart", "Brain", "Liver", "Skin"},
			CorrectAnswer: 3,
			Explanation:   "The skin is the largest organ in the human body, covering about 20 square feet.",
		},
		{
			ID:            4,
			Question:      "Who invented the World Wide Web?",
			Options:       []string{"Bill Gates", "Tim Berners-Lee", "Steve Jobs", "Mark Zuckerberg"},
			CorrectAnswer: 1,
			Explanation:   "Tim Berners-Lee invented the World Wide Web in 1989 while working at CERN.",
		},
		{
			ID:            5,
			Question:      "What is the hardest natural substance on Earth?",
			Options:       []string{"Steel", "Diamond", "Granite", "Quartz"},
			CorrectAnswer: 1,
			Explanation:   "Diamond is the hardest natural substance on Earth, scoring 10 on the Mohs scale.",
		},
	},
	"World Geography": {
		{
			ID:            1,
			Question:      "What is the capital of Australia?",
			Options:       []string{"Sydney", "Melbourne", "Canberra", "Brisbane"},
			CorrectAnswer: 2,
			Explanation:   "Canberra is the capital of Australia, chosen as a compromise between Sydney and Melbourne.",
		},
		{
			ID:            2,
			Question:      "Which is the largest continent by area?",
			Options:       []string{"North America", "Africa", "Asia", "Europe"},
			CorrectAnswer: 2,
			Explanation:   "Asia is the largest continent, covering about 30% of Earth's land area.",
		},
		{
			ID:            3,
			Question:      "What is the longest river in the world?",
			Options:       []string{"Amazon", "Nile", "Yangtze", "Mississippi"},
			CorrectAnswer: 1,
			Explanation:   "The Nile is the longest river in the world, stretching about 4,135 miles.",
		},
		{
			ID:            4,
			Question:      "Which country has the most islands?",
			Options:       []string{"Indonesia", "Sweden", "Finland", "Norway"},
			CorrectAnswer: 1,
			Explanation:   "Sweden has the most islands in the world, with over 267,570 islands.",
		},
		{
			ID:            5,
			Question:      "What is the smallest country in the world?",
			Options:       []string{"Monaco", "San Marino", "Vatican City", "Liechtenstein"},
			CorrectAnswer: 2,
			Explanation:   "Vatican City is the smallest country in the world, covering just 0.17 square miles.",
		},
	},
	"Literature and Authors": {
		{
			ID:            1,
			Question:      "Who wrote 'Pride and Prejudice'?",
			Options:       []string{"Charlotte Brontë", "Jane Austen", "Emily Brontë", "Mary Shelley"},
			CorrectAnswer: 1,
			Explanation:   "Jane Austen wrote 'Pride and Prejudice', published in 1813.",
		},
		{
			ID:            2,
			Question:      "What is the pen name of Samuel Clemens?",
			Options:       []string{"Mark Twain", "O. Henry", "Lewis Carroll", "George Eliot"},
			CorrectAnswer: 0,
			Explanation:   "Samuel Clemens wrote under the pen name Mark Twain.",
		},
		{
			ID:            3,
			Question:      "Who wrote '1984'?",
			Options:       []string{"Aldous Huxley", "George Orwell", "Ray Bradbury", "H.G. Wells"},
			CorrectAnswer: 1,
			Explanation:   "George Orwell wrote '1984', published in 1949.",
		},
		{
			ID:            4,
			Question:      "What is the longest novel ever written?",
			Options:       []string{"War and Peace", "In Search of Lost Time", "Don Quixote", "Les Misérables"},
			CorrectAnswer: 1,
			Explanation:   "'In Search of Lost Time' by Marcel Proust is considered the longest novel at about 1.2 million words.",
		},
		{
			ID:            5,
			Question:      "Who wrote 'The Great Gatsby'?",
			Options:       []string{"Ernest Hemingway", "F. Scott Fitzgerald", "John Steinbeck", "William Faulkner"},
			CorrectAnswer: 1,
			Explanation:   "F. Scott Fitzgerald wrote 'The Great Gatsby', published in 1925.",
		},
	},
	"Art and Artists": {
		{
			ID:            1,
			Question:      "Who painted the Mona Lisa?",
			Options:       []string{"Michelangelo", "Leonardo da Vinci", "Raphael", "Donatello"},
			CorrectAnswer: 1,
			Explanation:   "Leonardo da Vinci painted the Mona Lisa between 1503 and 1519.",
		},
		{
			ID:            2,
			Question:      "What art movement was Pablo Picasso associated with?",
			Options:       []string{"Impressionism", "Cubism", "Surrealism", "Expressionism"},
			CorrectAnswer: 1,
			Explanation:   "Pablo Picasso was a co-founder of Cubism along with Georges Braque.",
		},
		{
			ID:            3,
			Question:      "Who painted 'The Starry Night'?",
			Options:       []string{"Vincent van Gogh", "Claude Monet", "Paul Cézanne", "Henri Matisse"},
			CorrectAnswer: 0,
			Explanation:   "Vincent van Gogh painted 'The Starry Night' in 1889.",
		},
		{
			ID:            4,
			Question:      "What is the most expensive painting ever sold?",
			Options:       []string{"The Scream", "Salvator Mundi", "Interchange", "Nafea Faa Ipoipo"},
			CorrectAnswer: 1,
			Explanation:   "Salvator Mundi by Leonardo da Vinci sold for $450.3 million in 2017.",
		},
		{
			ID:            5,
			Question:      "Who sculpted 'David'?",
			Options:       []string{"Donatello", "Michelangelo", "Bernini", "Cellini"},
			CorrectAnswer: 1,
			Explanation:   "Michelangelo sculpted 'David' between 1501 and 1504.",
		},
	},
	"Mathematics": {
		{
			ID:            1,
			Question:      "What is the value of π (pi) to two decimal places?",
			Options:       []string{"3.12", "3.14", "3.16", "3.18"},
			CorrectAnswer: 1,
			Explanation:   "π (pi) is approximately 3.14159, so to two decimal places it's 3.14.",
		},
		{
			ID:            2,
			Question:      "What is the square root of 144?",
			Options:       []string{"10", "11", "12", "13"},
			CorrectAnswer: 2,
			Explanation:   "12 × 12 = 144, so the square root of 144 is 12.",
		},
		{
			ID:            3,
			Question:      "How many degrees are in a triangle?",
			Options:       []string{"90", "180", "270", "360"},
			CorrectAnswer: 1,
			Explanation:   "The sum of all angles in a triangle is always 180 degrees.",
		},
		{
			ID:            4,
			Question:      "What is 2 to the power of 8?",
			Options:       []string{"128", "256", "512", "1024"},
			CorrectAnswer: 1,
			Explanation:   "2^8 = 2 × 2 × 2 × 2 × 2 × 2 × 2 × 2 = 256.",
		},
		{
			ID:            5,
			Question:      "What is the next number in the sequence: 2, 4, 8, 16, __?",
			Options:       []string{"20", "24", "32", "64"},
			CorrectAnswer: 2,
			Explanation:   "Each number is multiplied by 2, so 16 × 2 = 32.",
		},
	},
	"Space and Astronomy": {
		{
			ID:            1,
			Question:      "What is the closest planet to the Sun?",
			Options:       []string{"Venus", "Mercury", "Earth", "Mars"},
			CorrectAnswer: 1,
			Explanation:   "Mercury is the closest planet to the Sun in our solar system.",
		},
		{
			ID:            2,
			Question:      "How many moons does Earth have?",
			Options:       []string{"0", "1", "2", "3"},
			CorrectAnswer: 1,
			Explanation:   "Earth has one natural satellite - the Moon.",
		},
		{
			ID:            3,
			Question:      "What is the largest planet in our solar system?",
			Options:       []string{"Saturn", "Jupiter", "Neptune", "Uranus"},
			CorrectAnswer: 1,
			Explanation:   "Jupiter is the largest planet in our solar system.",
		},
		{
			ID:            4,
			Question:      "What galaxy do we live in?",
			Options:       []string{"Andromeda", "Milky Way", "Triangulum", "Large Magellanic Cloud"},
			CorrectAnswer: 1,
			Explanation:   "We live in the Milky Way galaxy.",
		},
		{
			ID:            5,
			Question:      "What is a light year?",
			Options:       []string{"Time", "Distance", "Speed", "Energy"},
			CorrectAnswer: 1,
			Explanation:   "A light year is a unit of distance - the distance light travels in one year.",
		},
	},
}
