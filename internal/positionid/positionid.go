// Package positionid implements compact position IDs for Ur boards.
//
// A position ID packs both tracks (3 bits per counter), the player to move
// (1 bit) and the pending roll (3 bits, 7 meaning none) into 13 bytes and
// encodes them as an 18-character base64 string.
package positionid

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/yourusername/urengine/pkg/engine"
)

const (
	// PositionIDLength is the length of a position ID string
	PositionIDLength = 18

	keyBytes    = 13
	counterBits = 3
	noRollBits  = 7
)

var encoding = base64.RawStdEncoding

// ErrInvalidPositionID is returned for malformed or impossible IDs.
var ErrInvalidPositionID = errors.New("invalid position ID")

// Key is the packed binary form of a position.
type Key [keyBytes]byte

type bitWriter struct {
	key *Key
	pos int
}

func (w *bitWriter) write(v uint8, bits int) {
	for i := 0; i < bits; i++ {
		if v&(1<<i) != 0 {
			w.key[w.pos/8] |= 1 << (w.pos % 8)
		}
		w.pos++
	}
}

type bitReader struct {
	key *Key
	pos int
}

func (r *bitReader) read(bits int) uint8 {
	var v uint8
	for i := 0; i < bits; i++ {
		if r.key[r.pos/8]&(1<<(r.pos%8)) != 0 {
			v |= 1 << i
		}
		r.pos++
	}
	return v
}

// MakeKey packs a board into a Key.
func MakeKey(b *engine.Board) Key {
	var key Key
	w := bitWriter{key: &key}
	for p := range b.Tracks {
		for _, c := range b.Tracks[p] {
			w.write(uint8(c), counterBits)
		}
	}
	w.write(uint8(b.Turn), 1)
	if b.Roll == engine.NoRoll {
		w.write(noRollBits, 3)
	} else {
		w.write(uint8(b.Roll), 3)
	}
	return key
}

// BoardFromKey unpacks a Key and validates the result.
func BoardFromKey(key Key) (*engine.Board, error) {
	b := &engine.Board{}
	r := bitReader{key: &key}
	for p := range b.Tracks {
		for i := range b.Tracks[p] {
			b.Tracks[p][i] = int8(r.read(counterBits))
		}
	}
	b.Turn = engine.Player(r.read(1))
	roll := r.read(3)
	if roll == noRollBits {
		b.Roll = engine.NoRoll
	} else {
		b.Roll = int8(roll)
	}

	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPositionID, err)
	}
	return b, nil
}

// PositionID returns the position ID of a board.
func PositionID(b *engine.Board) string {
	key := MakeKey(b)
	return encoding.EncodeToString(key[:])
}

// BoardFromPositionID decodes a position ID.
func BoardFromPositionID(id string) (*engine.Board, error) {
	if len(id) != PositionIDLength {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrInvalidPositionID, len(id), PositionIDLength)
	}
	raw, err := encoding.DecodeString(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPositionID, err)
	}
	if len(raw) != keyBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidPositionID, len(raw))
	}
	var key Key
	copy(key[:], raw)
	return BoardFromKey(key)
}
