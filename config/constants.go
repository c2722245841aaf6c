package config

const AppName = "Bureaucracy Simulator API"

// DefaultSonglist holds the start screen audio track URLs.
var DefaultSonglist = []string{
	"https://example.com/audio/intro-theme-1.mp3",
	"https://example.com/audio/intro-theme-2.mp3",
	"https://example.com/audio/waiting-room-loop.mp3",
}

const AboutUsText = "Fight through the endless torment of bureaucracy to claim the ultimate prize: a mysterious and probably useless document. \n\nBureaucratic Simulator was developed as part of the Software Engineering 1 class project of the Electrical and Computer Engineering department at the Aristotle University of Thessaloniki. \n\nCreated by a team of four people, \n\nIoannis Konstantakis \nIasonas Lambrinidis \nSavvas Tzanetis \nVasilis Zoidis \n\nOur goal was to create a game parody of the frustrating maze that is any government website."
