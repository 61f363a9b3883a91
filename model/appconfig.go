package model

// AppConfig holds tool-wide preferences and default packing settings.
type AppConfig struct {
	// Default atlas settings applied to new projects
	DefaultMaxWidth   int       `json:"default_max_width"`
	DefaultMaxHeight  int       `json:"default_max_height"`
	DefaultPadding    int       `json:"default_padding"`
	DefaultPowerOfTwo bool      `json:"default_power_of_two"`
	DefaultAlgorithm  Algorithm `json:"default_algorithm"`
	DefaultFormat     Format    `json:"default_format"`

	// Application preferences
	RecentProjects []string `json:"recent_projects"`
	MaxRecent      int      `json:"max_recent"` // Recent list length cap, 0 = default of 10
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultMaxWidth:   defaults.MaxWidth,
		DefaultMaxHeight:  defaults.MaxHeight,
		DefaultPadding:    defaults.Padding,
		DefaultPowerOfTwo: defaults.PowerOfTwo,
		DefaultAlgorithm:  defaults.Algorithm,
		DefaultFormat:     FormatJSON,
		RecentProjects:    []string{},
		MaxRecent:         10,
	}
}

// ApplyToSettings copies the default values from AppConfig into an
// AtlasSettings struct. Used when creating a new project so it inherits the
// user's saved defaults.
func (c AppConfig) ApplyToSettings(s *AtlasSettings) {
	s.MaxWidth = c.DefaultMaxWidth
	s.MaxHeight = c.DefaultMaxHeight
	s.Padding = c.DefaultPadding
	s.PowerOfTwo = c.DefaultPowerOfTwo
	s.Algorithm = c.DefaultAlgorithm
}

// AddRecentProject puts path at the front of the recent list, removing any
// earlier occurrence and trimming the list to the configured cap.
func (c *AppConfig) AddRecentProject(path string) {
	limit := c.MaxRecent
	if limit <= 0 {
		limit = 10
	}
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > limit {
		recent = recent[:limit]
	}
	c.RecentProjects = recent
}
