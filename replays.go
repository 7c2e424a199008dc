package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/remeh/sizedwaitgroup"

	"slipstream/osd"
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

const replayExt = ".rply"

// Replay container header: magic, format version, the recorded frame count,
// then the opponent's connect code. Frame payload follows; the player only
// needs the header.
var replayMagic = [4]byte{'R', 'P', 'L', 'Y'}

const replayVersion = 1

var (
	errReplayMagic   = errors.New("not a replay file")
	errReplayVersion = errors.New("unsupported replay version")
)

type replayInfo struct {
	Path     string
	Size     int64
	Frames   int32
	Opponent string // connect code of the other player, may be empty
	ModTime  time.Time
}

// readReplayHeader parses the header: 10 fixed bytes, then the
// length-prefixed opponent connect code.
func readReplayHeader(path string) (int32, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, "", err
	}
	defer f.Close()

	var hdr [11]byte
	if _, err := io.ReadFull(f, hdr[:10]); err != nil {
		return 0, "", err
	}
	if [4]byte(hdr[:4]) != replayMagic {
		return 0, "", errReplayMagic
	}
	if binary.BigEndian.Uint16(hdr[4:6]) != replayVersion {
		return 0, "", errReplayVersion
	}
	frames := int32(binary.BigEndian.Uint32(hdr[6:10]))
	if frames < 0 {
		frames = 0
	}
	if _, err := io.ReadFull(f, hdr[10:]); err != nil {
		return 0, "", err
	}
	code := make([]byte, hdr[10])
	if _, err := io.ReadFull(f, code); err != nil {
		return 0, "", err
	}
	return frames, string(code), nil
}

// writeReplayHeader is the counterpart used when recording; tests and the
// fake mode use it to fabricate replay files.
func writeReplayHeader(path string, frames int32, opponent string) error {
	if len(opponent) > 255 {
		opponent = opponent[:255]
	}
	hdr := make([]byte, 0, 11+len(opponent))
	hdr = append(hdr, replayMagic[:]...)
	hdr = binary.BigEndian.AppendUint16(hdr, replayVersion)
	hdr = binary.BigEndian.AppendUint32(hdr, uint32(frames))
	hdr = append(hdr, byte(len(opponent)))
	hdr = append(hdr, opponent...)
	return os.WriteFile(path, hdr, 0644)
}

// scanReplayFolder reads headers for every replay in dir, in parallel.
// Unreadable files are skipped with a log line rather than failing the scan.
func scanReplayFolder(dir string) ([]replayInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	var infos []replayInfo
	swg := sizedwaitgroup.New(runtime.NumCPU())
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), replayExt) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		swg.Add()
		go func() {
			defer swg.Done()
			fi, err := os.Stat(path)
			if err != nil {
				logDebug("scan replay %s: %v", path, err)
				return
			}
			frames, opponent, err := readReplayHeader(path)
			if err != nil {
				logDebug("scan replay %s: %v", path, err)
				return
			}
			mu.Lock()
			infos = append(infos, replayInfo{
				Path:     path,
				Size:     fi.Size(),
				Frames:   frames,
				Opponent: opponent,
				ModTime:  fi.ModTime(),
			})
			mu.Unlock()
		}()
	}
	swg.Wait()

	sort.Slice(infos, func(i, j int) bool { return infos[i].ModTime.After(infos[j].ModTime) })
	return infos, nil
}

// pickLatestReplay returns the most recently modified replay, or nil.
func pickLatestReplay(infos []replayInfo) *replayInfo {
	if len(infos) == 0 {
		return nil
	}
	return &infos[0]
}

// replayDuration converts a frame count to wall time at the recorded rate.
func replayDuration(frames int32) time.Duration {
	return time.Duration(frames) * time.Second / playbackFPS
}

// describeReplay renders "name (1.2 MB, 4m 32s)" for OSD messages.
func describeReplay(info replayInfo) string {
	d := replayDuration(info.Frames).Round(time.Second)
	return fmt.Sprintf("%s (%s, %s)",
		filepath.Base(info.Path),
		humanize.Bytes(uint64(info.Size)),
		durafmt.Parse(d).LimitFirstN(2).Format(shortUnits))
}

// loadReplay opens a replay for playback and announces it on the OSD. A
// blocklisted opponent gets called out so the replay can be skipped.
func loadReplay(path string) (*replayInfo, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	frames, opponent, err := readReplayHeader(path)
	if err != nil {
		return nil, err
	}
	info := &replayInfo{Path: path, Size: fi.Size(), Frames: frames, Opponent: opponent, ModTime: fi.ModTime()}
	postMessage("Playing " + describeReplay(*info))
	if info.Opponent != "" {
		postMessage("Opponent: " + info.Opponent)
		if isBlocked(info.Opponent) {
			postMessage(info.Opponent + " is on your blocklist")
		}
	}
	if overlay != nil {
		overlay.AddTypedMessage(osd.PlaybackPosition, "Length "+osd.TimeForFrame(osd.FirstFrame+frames),
			osd.DurationShort, osd.ColorCyan)
	}
	return info, nil
}
