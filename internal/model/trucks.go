package model

// TruckPresets returns the built-in trailer configurations used for
// road transport of pipe. Dimensions are the usable cargo space in mm.
func TruckPresets() []TruckConfig {
	return []TruckConfig{
		{
			Name:             "Standard 24t Romania",
			MaxPayloadKG:     24000,
			InternalLengthMM: 13600,
			InternalWidthMM:  2480,
			InternalHeightMM: 2700,
			MaxAxleWeightKG:  11500,
		},
		{
			Name:             "Mega Trailer Romania",
			MaxPayloadKG:     24000,
			InternalLengthMM: 13600,
			InternalWidthMM:  2480,
			InternalHeightMM: 3000,
			MaxAxleWeightKG:  11500,
		},
		{
			Name:             "Standard 24t EU",
			MaxPayloadKG:     24000,
			InternalLengthMM: 13600,
			InternalWidthMM:  2450,
			InternalHeightMM: 2700,
			MaxAxleWeightKG:  11500,
		},
	}
}

// FindTruck looks up a preset trailer by name.
func FindTruck(name string) (TruckConfig, bool) {
	for _, t := range TruckPresets() {
		if t.Name == name {
			return t, true
		}
	}
	return TruckConfig{}, false
}

// DefaultTruck returns the preset used when no trailer is specified.
func DefaultTruck() TruckConfig {
	return TruckPresets()[0]
}
