package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"picklist/internal/config"
	"picklist/internal/eventbus"
	"picklist/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&configPath, "c", "", "Path to the config file (shorthand)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("picklist.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration with event bus support
	configSvc := config.NewConfigServiceWithBus(bus)
	if configPath == "" {
		configPath = configSvc.Path()
	}
	cfg := loadOrCreateConfig(configSvc, configPath)

	// Subscribe to list changes to save automatically
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.ConfigChangedEvent)
		if !ok {
			return
		}
		cfg.Items = event.Items
		cfg.Multiselect = event.Multiselect
		if !cfg.UISettings.AutosaveOnExit {
			return
		}
		if err := configSvc.SaveToPath(cfg, configPath); err != nil {
			log.Printf("Failed to save config: %v", err)
		} else {
			log.Printf("Config saved to %s", configPath)
		}
	})

	// Create UI model and program
	uiModel := ui.NewModel(cfg, bus)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	log.Printf("Starting UI with %d items", len(cfg.Items))
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadOrCreateConfig loads the config file or falls back to defaults
func loadOrCreateConfig(configSvc config.ConfigService, path string) *config.Config {
	if _, err := os.Stat(path); err == nil {
		if cfg, err := configSvc.LoadFromPath(path); err == nil {
			log.Printf("Loaded config from %s", path)
			return cfg
		} else {
			log.Printf("Failed to load config from %s: %v", path, err)
		}
	}

	log.Printf("Using default config, will save to %s", path)
	return config.DefaultConfig()
}
