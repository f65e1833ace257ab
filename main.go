package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/hora-app/mascot/internal/app"
	"github.com/joho/godotenv"
)

const envStdioLog = "MASCOT_STDIO_LOG"

func main() {
	// A .env file is optional; real environment variables win over it.
	_ = godotenv.Load()

	defaults, err := app.DefaultConfigFromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	outDir := flag.String("out", defaults.OutDir, "directory for the generated PNGs; also configurable via "+app.EnvOutDir)
	name := flag.String("name", defaults.Name, "base file name, without extension; also configurable via "+app.EnvName)
	seed := flag.Uint64("seed", defaults.Seed, "seed for the ambient particle scatter; also configurable via "+app.EnvSeed)
	preview := flag.Bool("preview", defaults.Preview, "show the result on the framebuffer; also configurable via "+app.EnvPreview)
	fbDevice := flag.String("fb", defaults.FBDevice, "framebuffer device used by -preview; also configurable via "+app.EnvFBDevice)
	debug := flag.Bool("debug", false, "enable debug logging to ./mascot-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr to this file; also configurable via "+envStdioLog)
	flag.Parse()

	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv(envStdioLog)
	}
	if logPath != "" {
		if err := redirectOutput(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./mascot-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			gg.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	a := app.New(app.Config{
		OutDir:   *outDir,
		Name:     *name,
		Seed:     *seed,
		Preview:  *preview,
		FBDevice: *fbDevice,
	})
	a.Logger = logger

	res, err := a.Run()
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	fmt.Println("Saved to:", res.OpaquePath)
	fmt.Printf("Size: %dx%d\n", res.Width, res.Height)
	fmt.Println("Also saved RGBA version:", res.AlphaPath)
}
