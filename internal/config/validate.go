package config

import "errors"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output_dir must be set")
	}
	if err := c.validateAlign(); err != nil {
		return err
	}
	return c.validateSubtitle()
}

func (c *Config) validateAlign() error {
	if c.Align.MaxWorkers <= 0 {
		return errors.New("align.max_workers must be positive")
	}
	if c.Align.TargetWordsPerChunk <= 0 {
		return errors.New("align.target_words_per_chunk must be positive")
	}
	if c.Align.FanoutFactor <= 0 {
		return errors.New("align.fanout_factor must be positive")
	}
	return nil
}

func (c *Config) validateSubtitle() error {
	if c.Subtitle.MaxLineLength <= 0 {
		return errors.New("subtitle.max_line_length must be positive")
	}
	if c.Subtitle.MaxWordsPerEntry <= 0 {
		return errors.New("subtitle.max_words_per_entry must be positive")
	}
	if c.Subtitle.GapThresholdSeconds <= 0 {
		return errors.New("subtitle.gap_threshold_seconds must be positive")
	}
	return nil
}
