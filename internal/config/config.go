package config

import "time"

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Login FakeAPI
type Configuration struct {
	Server  Server  `debugmap:"visible"`
	Login   Login   `debugmap:"visible"`
	FakeAPI FakeAPI `debugmap:"visible"`

	// Log
	LogFormat string `debugmap:"visible" default:"console"`
	LogLevel  string `debugmap:"visible" default:"info"`
}

// Server is the VCF backend the console talks to.
type Server struct {
	URL                string        `debugmap:"visible" default:"http://localhost:8000"`
	InsecureSkipVerify bool          `debugmap:"visible"`
	Timeout            time.Duration `debugmap:"visible"`
}

// Login holds credentials given on the command line.
type Login struct {
	VCFURL   string `debugmap:"visible"`
	Username string `debugmap:"visible"`
	Password string `debugmap:"sensitive"`
}

type FakeAPI struct {
	HTTPPort         int           `debugmap:"visible" default:"8000"`
	AcceptedUsername string        `debugmap:"visible" default:"admin"`
	AcceptedPassword string        `debugmap:"sensitive" default:"admin"`
	SessionTTL       time.Duration `debugmap:"visible" default:"1h"`
}
