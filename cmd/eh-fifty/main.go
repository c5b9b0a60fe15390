// Command eh-fifty configures an Astro A50 gen 4 headset from the terminal.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	ehfifty "github.com/tdryer/eh-fifty"
	"github.com/tdryer/eh-fifty/pkg"
)

var (
	labelColor = color.New(color.Bold)
	okColor    = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
)

func main() {
	app := cli.NewApp()
	app.Name = "eh-fifty"
	app.Usage = "configure Astro A50 gen 4 devices"
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "debug", Usage: "enable debug logging with frame dumps"},
		cli.BoolFlag{Name: "json-log", Usage: "emit logs as JSON"},
		cli.BoolFlag{Name: "legacy", Usage: "speak the legacy protocol revision"},
		cli.DurationFlag{Name: "timeout", Value: 3 * time.Second, Usage: "per-transfer deadline"},
	}
	app.Before = func(c *cli.Context) error {
		if c.Bool("debug") {
			pkg.SetLogLevel(slog.LevelDebug)
		}
		if c.Bool("json-log") {
			pkg.SetLogFormat(pkg.LogFormatJSON)
		}
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:   "status",
			Usage:  "show headset and battery status",
			Action: withDevice(statusCommand),
		},
		{
			Name:      "balance",
			Usage:     "show or set the game/chat balance (0 game .. 255 chat)",
			ArgsUsage: "[value]",
			Flags:     savedFlag(),
			Action:    withDevice(balanceCommand),
		},
		{
			Name:      "alert-volume",
			Usage:     "show or set the alert volume percentage",
			ArgsUsage: "[percent]",
			Flags:     savedFlag(),
			Action:    withDevice(alertVolumeCommand),
		},
		{
			Name:      "noise-gate",
			Usage:     "show or set the noise gate mode",
			ArgsUsage: "[streaming|night|home|tournament]",
			Flags:     savedFlag(),
			Action:    withDevice(noiseGateCommand),
		},
		{
			Name:      "slider",
			Usage:     "show or set a slider value",
			ArgsUsage: "<mic-mix|chat-mix|game-mix|aux-mix|mic|side-tone> [percent]",
			Flags:     savedFlag(),
			Action:    withDevice(sliderCommand),
		},
		{
			Name:      "mic-eq",
			Usage:     "show or set the mic EQ preset",
			ArgsUsage: "[0-2]",
			Flags:     savedFlag(),
			Action:    withDevice(micEQCommand),
		},
		{
			Name:      "eq-preset",
			Usage:     "show or set the active EQ preset",
			ArgsUsage: "[1-3]",
			Action:    withDevice(eqPresetCommand),
		},
		{
			Name:      "eq-name",
			Usage:     "show or set an EQ preset name",
			ArgsUsage: "<preset> [name]",
			Flags:     savedFlag(),
			Action:    withDevice(eqNameCommand),
		},
		{
			Name:      "eq-gain",
			Usage:     "show or set the five band gains of an EQ preset, in dB",
			ArgsUsage: "<preset> [g1 g2 g3 g4 g5]",
			Action:    withDevice(eqGainCommand),
		},
		{
			Name:      "eq-band",
			Usage:     "show or set one band's center frequency (Hz) and bandwidth",
			ArgsUsage: "<preset> <band> [freq bandwidth]",
			Action:    withDevice(eqBandCommand),
		},
		{
			Name:   "save",
			Usage:  "commit all active values as the saved defaults",
			Action: withDevice(saveCommand),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "eh-fifty:", err)
		os.Exit(1)
	}
}

func savedFlag() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{Name: "saved", Usage: "read the saved value instead of the active one"},
	}
}

// withDevice opens the device around a command action and guarantees the
// session is released on every exit path.
func withDevice(action func(c *cli.Context, dev *ehfifty.Device) error) func(*cli.Context) error {
	return func(c *cli.Context) error {
		opts := []ehfifty.Option{
			ehfifty.WithTimeout(c.GlobalDuration("timeout")),
		}
		if c.GlobalBool("legacy") {
			opts = append(opts, ehfifty.WithRevision(ehfifty.RevisionLegacy))
		}
		dev, err := ehfifty.Open(opts...)
		if err != nil {
			return err
		}
		defer dev.Close()
		return action(c, dev)
	}
}

func statusCommand(c *cli.Context, dev *ehfifty.Device) error {
	headset, err := dev.GetHeadsetStatus()
	if err != nil {
		return err
	}
	battery, err := dev.GetBatteryStatus()
	if err != nil {
		return err
	}

	labelColor.Print("headset: ")
	if headset.IsOn {
		okColor.Print("on")
	} else {
		warnColor.Print("off")
	}
	if headset.IsDocked {
		fmt.Print(", docked")
	}
	fmt.Println()

	labelColor.Print("battery: ")
	fmt.Printf("%d%%", battery.ChargePercent)
	if battery.IsCharging {
		okColor.Print(" (charging)")
	}
	fmt.Println()
	return nil
}

func balanceCommand(c *cli.Context, dev *ehfifty.Device) error {
	if c.NArg() > 0 {
		value, err := parseInt(c.Args().Get(0), "balance")
		if err != nil {
			return err
		}
		return dev.SetDefaultBalance(value)
	}
	balance, err := dev.GetBalance()
	if err != nil {
		return err
	}
	defBalance, err := dev.GetDefaultBalance(c.Bool("saved"))
	if err != nil {
		return err
	}
	labelColor.Print("balance: ")
	fmt.Println(balance)
	labelColor.Print("default: ")
	fmt.Println(defBalance)
	return nil
}

func alertVolumeCommand(c *cli.Context, dev *ehfifty.Device) error {
	if c.NArg() > 0 {
		percent, err := parseInt(c.Args().Get(0), "percent")
		if err != nil {
			return err
		}
		return dev.SetAlertVolume(percent)
	}
	percent, err := dev.GetAlertVolume(c.Bool("saved"))
	if err != nil {
		return err
	}
	fmt.Printf("%d%%\n", percent)
	return nil
}

func noiseGateCommand(c *cli.Context, dev *ehfifty.Device) error {
	if c.NArg() > 0 {
		mode, err := parseNoiseGateMode(c.Args().Get(0))
		if err != nil {
			return err
		}
		return dev.SetNoiseGateMode(mode)
	}
	mode, err := dev.GetNoiseGateMode(c.Bool("saved"))
	if err != nil {
		return err
	}
	fmt.Println(mode)
	return nil
}

func sliderCommand(c *cli.Context, dev *ehfifty.Device) error {
	if c.NArg() < 1 {
		return fmt.Errorf("slider type required")
	}
	slider, err := parseSliderType(c.Args().Get(0))
	if err != nil {
		return err
	}
	if c.NArg() > 1 {
		percent, err := parseInt(c.Args().Get(1), "percent")
		if err != nil {
			return err
		}
		return dev.SetSliderValue(slider, percent)
	}
	percent, err := dev.GetSliderValue(slider, c.Bool("saved"))
	if err != nil {
		return err
	}
	fmt.Printf("%d%%\n", percent)
	return nil
}

func micEQCommand(c *cli.Context, dev *ehfifty.Device) error {
	if c.NArg() > 0 {
		value, err := parseInt(c.Args().Get(0), "mic EQ preset")
		if err != nil {
			return err
		}
		return dev.SetMicEQ(ehfifty.MicEQ(value))
	}
	m, err := dev.GetMicEQ(c.Bool("saved"))
	if err != nil {
		return err
	}
	fmt.Println(int(m))
	return nil
}

func eqPresetCommand(c *cli.Context, dev *ehfifty.Device) error {
	if c.NArg() > 0 {
		preset, err := parseInt(c.Args().Get(0), "preset")
		if err != nil {
			return err
		}
		return dev.SetActiveEQPreset(preset)
	}
	preset, err := dev.GetActiveEQPreset()
	if err != nil {
		return err
	}
	fmt.Println(preset)
	return nil
}

func eqNameCommand(c *cli.Context, dev *ehfifty.Device) error {
	if c.NArg() < 1 {
		return fmt.Errorf("preset required")
	}
	preset, err := parseInt(c.Args().Get(0), "preset")
	if err != nil {
		return err
	}
	if c.NArg() > 1 {
		return dev.SetEQPresetName(preset, strings.Join(c.Args()[1:], " "))
	}
	name, err := dev.GetEQPresetName(preset, c.Bool("saved"))
	if err != nil {
		return err
	}
	fmt.Println(name)
	return nil
}

func eqGainCommand(c *cli.Context, dev *ehfifty.Device) error {
	if c.NArg() < 1 {
		return fmt.Errorf("preset required")
	}
	preset, err := parseInt(c.Args().Get(0), "preset")
	if err != nil {
		return err
	}
	if c.NArg() > 1 {
		if c.NArg() != 1+ehfifty.NumEQBands {
			return fmt.Errorf("expected %d gains", ehfifty.NumEQBands)
		}
		var gain [ehfifty.NumEQBands]int
		for i := range gain {
			if gain[i], err = parseInt(c.Args().Get(1+i), "gain"); err != nil {
				return err
			}
		}
		return dev.SetEQPresetGain(preset, gain)
	}
	gain, err := dev.GetEQPresetGain(preset)
	if err != nil {
		return err
	}
	labelColor.Print("active: ")
	fmt.Println(formatGains(gain.Gain))
	labelColor.Print("saved:  ")
	fmt.Println(formatGains(gain.SavedGain))
	return nil
}

func eqBandCommand(c *cli.Context, dev *ehfifty.Device) error {
	if c.NArg() < 2 {
		return fmt.Errorf("preset and band required")
	}
	preset, err := parseInt(c.Args().Get(0), "preset")
	if err != nil {
		return err
	}
	band, err := parseInt(c.Args().Get(1), "band")
	if err != nil {
		return err
	}
	if c.NArg() > 2 {
		if c.NArg() != 4 {
			return fmt.Errorf("expected frequency and bandwidth")
		}
		freq, err := parseInt(c.Args().Get(2), "frequency")
		if err != nil {
			return err
		}
		bw, err := parseInt(c.Args().Get(3), "bandwidth")
		if err != nil {
			return err
		}
		return dev.SetEQPresetFreqAndBW(preset, band, freq, bw)
	}
	fb, err := dev.GetEQPresetFreqAndBW(preset, band)
	if err != nil {
		return err
	}
	labelColor.Print("active: ")
	fmt.Printf("%d Hz, bandwidth %d\n", fb.CenterFreq, fb.Bandwidth)
	labelColor.Print("saved:  ")
	fmt.Printf("%d Hz, bandwidth %d\n", fb.SavedCenterFreq, fb.SavedBandwidth)
	return nil
}

func saveCommand(c *cli.Context, dev *ehfifty.Device) error {
	if err := dev.SaveValues(); err != nil {
		return err
	}
	okColor.Println("saved")
	return nil
}

func parseInt(s, what string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, s)
	}
	return v, nil
}

func parseNoiseGateMode(s string) (ehfifty.NoiseGateMode, error) {
	switch strings.ToLower(s) {
	case "streaming":
		return ehfifty.NoiseGateStreaming, nil
	case "night":
		return ehfifty.NoiseGateNight, nil
	case "home":
		return ehfifty.NoiseGateHome, nil
	case "tournament":
		return ehfifty.NoiseGateTournament, nil
	default:
		return 0, fmt.Errorf("unknown noise gate mode %q", s)
	}
}

func parseSliderType(s string) (ehfifty.SliderType, error) {
	switch strings.ToLower(s) {
	case "mic-mix":
		return ehfifty.SliderMicMix, nil
	case "chat-mix":
		return ehfifty.SliderChatMix, nil
	case "game-mix":
		return ehfifty.SliderGameMix, nil
	case "aux-mix":
		return ehfifty.SliderAuxMix, nil
	case "mic":
		return ehfifty.SliderMic, nil
	case "side-tone":
		return ehfifty.SliderSideTone, nil
	default:
		return 0, fmt.Errorf("unknown slider type %q", s)
	}
}

func formatGains(gain [ehfifty.NumEQBands]int) string {
	parts := make([]string, len(gain))
	for i, g := range gain {
		parts[i] = strconv.Itoa(g)
	}
	return strings.Join(parts, " ")
}
