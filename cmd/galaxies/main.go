package main

import (
	"bufio"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/pflag"

	"github.com/vancomm/galaxies-server/internal/galaxies"
	"github.com/vancomm/galaxies-server/internal/handlers"
)

var log = logrus.New()

var (
	size     int
	seed     int64
	seedSet  bool
	solution bool
	debug    bool
	logFile  string
)

func init() {
	pflag.IntVarP(&size, "size", "n", 7, "grid side length")
	pflag.Int64VarP(&seed, "seed", "s", 0, "generation seed (random when omitted)")
	pflag.BoolVar(&solution, "solution", false, "print the solution instead of playing")
	pflag.BoolVarP(&debug, "debug", "d", false, "verbose logging")
	pflag.StringVar(&logFile, "log-file", "", "append logs to a rotated file")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if debug {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if logFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatal("unable to create log file hook: ", err)
		}
		log.AddHook(hook)
	}
}

func main() {
	pflag.Parse()
	seedSet = pflag.CommandLine.Changed("seed")

	setupLogging()

	if !seedSet {
		seed = rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		)).Int64()
	}

	params := galaxies.GameParams{Size: size, Seed: seed}
	log.WithFields(logrus.Fields{"size": size, "seed": seed}).Debug("generating")

	model, err := galaxies.NewModel(params)
	if err != nil {
		log.Fatal("unable to generate a puzzle: ", err)
	}

	if solution {
		fmt.Println(model.Render())
		fmt.Println(model.Puzzle.RenderSolution())
		return
	}

	play(model)
}

func play(model *galaxies.Model) {
	fmt.Println(model.Render())
	fmt.Println("commands: t <h|v> <x> <y>, a <dot> <dir>, u, r, x, h, s, q")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "q" {
			return
		}

		if err := handlers.ApplyCommand(model, line); err != nil {
			log.Error(err)
			continue
		}

		fmt.Println(model.Render())

		if model.IsSolved() {
			if model.UsedSolve {
				fmt.Println("solved (with help)")
			} else {
				fmt.Println("solved!")
			}
			return
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal("unable to read input: ", err)
	}
}
