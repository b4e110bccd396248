package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to mintern! Let's configure the forum front end.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Backend API base URL.
	apiPrompt := promptui.Prompt{
		Label:   "Backend API base URL",
		Default: cfg.API.BaseURL,
		Validate: func(s string) error {
			parsed, err := url.Parse(strings.TrimSpace(s))
			if err != nil || parsed.Scheme == "" || parsed.Host == "" {
				return fmt.Errorf("must be an absolute http(s) URL")
			}
			return nil
		},
	}
	baseURL, err := apiPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("api base url: %w", err)
	}
	cfg.API.BaseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")

	// 2. Server port.
	portPrompt := promptui.Prompt{
		Label:   "Port for the front-end server",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("must be a port number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("server port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 3. Site name shown in the navbar and page titles.
	namePrompt := promptui.Prompt{
		Label:   "Site name",
		Default: cfg.Server.SiteName,
	}
	siteName, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}
	if strings.TrimSpace(siteName) != "" {
		cfg.Server.SiteName = strings.TrimSpace(siteName)
	}

	// 4. CORS policy.
	corsPrompt := promptui.Select{
		Label: "Allow cross-origin requests from any origin (dev mode)?",
		Items: []string{"no", "yes"},
	}
	corsIdx, _, err := corsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("cors selection: %w", err)
	}
	cfg.Server.AllowAll = corsIdx == 1

	// 5. Archive output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for static archive exports",
		Default: cfg.Export.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	if strings.TrimSpace(outputDir) != "" {
		cfg.Export.OutputDir = strings.TrimSpace(outputDir)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Printf("Configuration saved to %s\n", path)
	return cfg, nil
}
