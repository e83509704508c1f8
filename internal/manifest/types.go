package manifest

// Composer is the subset of composer.json that construct generates.
type Composer struct {
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	Keywords         []string          `json:"keywords,omitempty"`
	License          string            `json:"license"`
	Require          map[string]string `json:"require"`
	RequireDev       map[string]string `json:"require-dev,omitempty"`
	Autoload         Autoload          `json:"autoload"`
	AutoloadDev      *Autoload         `json:"autoload-dev,omitempty"`
	Scripts          map[string]string `json:"scripts,omitempty"`
	MinimumStability string            `json:"minimum-stability,omitempty"`
}

// Autoload is a composer autoload block.
type Autoload struct {
	PSR4 map[string]string `json:"psr-4,omitempty"`
}
