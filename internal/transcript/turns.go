package transcript

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadTurns reads speaker turns from path. Files ending in .rttm are parsed
// as RTTM (the pyannote interchange format); everything else is treated as a
// JSON array of {start, end, speaker} objects. The returned slice preserves
// file order; the aligner sorts its own copy.
func LoadTurns(path string) ([]SpeakerTurn, error) {
	if strings.TrimSpace(path) == "" {
		return nil, os.ErrNotExist
	}
	if strings.EqualFold(filepath.Ext(path), ".rttm") {
		return loadRTTM(path)
	}
	return loadTurnsJSON(path)
}

func loadTurnsJSON(path string) ([]SpeakerTurn, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read turns file: %w", err)
	}
	var turns []SpeakerTurn
	if err := json.Unmarshal(data, &turns); err != nil {
		return nil, fmt.Errorf("parse turns json: %w", err)
	}
	return turns, nil
}

// loadRTTM parses SPEAKER records. An RTTM line is ten whitespace-separated
// fields: type, file, channel, onset, duration, then NA placeholders with the
// speaker name in field eight. Non-SPEAKER records and malformed lines are
// skipped.
func loadRTTM(path string) ([]SpeakerTurn, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rttm file: %w", err)
	}
	defer file.Close()

	var turns []SpeakerTurn
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 8 || !strings.EqualFold(fields[0], "SPEAKER") {
			continue
		}
		onset, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			continue
		}
		duration, err := strconv.ParseFloat(fields[4], 64)
		if err != nil || duration <= 0 {
			continue
		}
		turns = append(turns, SpeakerTurn{
			Start:   onset,
			End:     onset + duration,
			Speaker: fields[7],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan rttm file: %w", err)
	}
	return turns, nil
}
