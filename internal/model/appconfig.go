package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default loading parameters applied to new orders
	DefaultPipeLengthM    float64 `json:"default_pipe_length_m"`
	DefaultTruck          string  `json:"default_truck"`
	DefaultOvalityFactor  float64 `json:"default_ovality_factor"`
	DefaultNestingLevels  int     `json:"default_nesting_levels"`
	DefaultBundleGapMM    float64 `json:"default_bundle_gap_mm"`
	DefaultExtractionKG   float64 `json:"default_extraction_kg"`
	DefaultAllowMixedSDR  bool    `json:"default_allow_mixed_sdr"`
	DefaultEnableNesting  bool    `json:"default_enable_nesting"`

	// Application preferences
	RecentOrders []string `json:"recent_orders"`
	CatalogPath  string   `json:"catalog_path"` // empty = built-in catalog
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultPipeLengthM:   13.0,
		DefaultTruck:         "Standard 24t Romania",
		DefaultOvalityFactor: defaults.OvalityFactor,
		DefaultNestingLevels: defaults.MaxNestingLevels,
		DefaultBundleGapMM:   defaults.BundleGapMM,
		DefaultExtractionKG:  defaults.ExtractionThresholdKG,
		DefaultAllowMixedSDR: defaults.AllowMixedSDR,
		DefaultEnableNesting: defaults.EnableNesting,
		RecentOrders:         []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a
// LoadSettings struct. Used when a new order is created so it inherits the
// user's saved defaults.
func (c AppConfig) ApplyToSettings(s *LoadSettings) {
	s.OvalityFactor = c.DefaultOvalityFactor
	s.MaxNestingLevels = c.DefaultNestingLevels
	s.BundleGapMM = c.DefaultBundleGapMM
	s.ExtractionThresholdKG = c.DefaultExtractionKG
	s.AllowMixedSDR = c.DefaultAllowMixedSDR
	s.EnableNesting = c.DefaultEnableNesting
}

// AddRecentOrder records an order file path at the front of the recent
// list, dropping duplicates and keeping at most ten entries.
func (c *AppConfig) AddRecentOrder(path string) {
	recent := []string{path}
	for _, p := range c.RecentOrders {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	c.RecentOrders = recent
}
