package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/simukka/soundscape/audio"
)

var (
	flagTension  float64
	flagPulse    float64
	flagReverb   float64
	flagVolume   float64
	flagSeed     uint32
	flagDuration time.Duration
	flagConfig   string
	flagWav      string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "soundscape",
	Short: "Generative soundscape engine",
	Long: `Soundscape renders a continuous generative audio bed from four
control values: tension, pulse, reverb and volume, each 0-100.

Examples:
  soundscape --tension 70 --pulse 40
  soundscape --duration 30s --seed 7
  soundscape --wav out.wav --duration 10s --tension 85`,
	RunE: run,
}

func init() {
	rootCmd.Flags().Float64Var(&flagTension, "tension", 30, "Harmonic tension and event density (0-100)")
	rootCmd.Flags().Float64Var(&flagPulse, "pulse", 30, "Rhythmic pulse rate (0-100)")
	rootCmd.Flags().Float64Var(&flagReverb, "reverb", 30, "Reverb send level (0-100)")
	rootCmd.Flags().Float64Var(&flagVolume, "volume", 70, "Master volume (0-100)")
	rootCmd.Flags().Uint32Var(&flagSeed, "seed", 0, "Base random seed (0 = derive from clock)")
	rootCmd.Flags().DurationVar(&flagDuration, "duration", 0, "Stop after this long (0 = run until interrupted)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "YAML file overriding synthesis tunables")
	rootCmd.Flags().StringVar(&flagWav, "wav", "", "Render offline to a WAV file instead of playing")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var cfg *audio.Config
	if flagConfig != "" {
		c, err := audio.LoadConfig(flagConfig)
		if err != nil {
			return err
		}
		cfg = c
	}

	seed := flagSeed
	if seed == 0 {
		seed = uint32(time.Now().UnixNano())
	}

	ec := audio.EngineConfig{
		Tension: flagTension,
		Pulse:   flagPulse,
		Reverb:  flagReverb,
		Volume:  flagVolume,
	}

	if flagWav != "" {
		seconds := flagDuration.Seconds()
		if seconds <= 0 {
			seconds = 30
		}
		slog.Info("rendering", "path", flagWav, "seconds", seconds, "seed", seed)
		return audio.RenderWAVFile(flagWav, cfg, ec, seed, seconds)
	}

	eng := audio.NewEngine(cfg, nil, seed)
	eng.Update(ec)
	if err := eng.SetRunning(true); err != nil {
		return err
	}
	defer eng.SetRunning(false)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	if flagDuration > 0 {
		select {
		case <-sigCh:
			fmt.Fprintln(os.Stderr, "\nInterrupted")
		case <-time.After(flagDuration):
		}
	} else {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nInterrupted")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
