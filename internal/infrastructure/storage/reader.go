package storage

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/binary"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/pkg/logger"

	"github.com/sirupsen/logrus"
)

// LoadMap reads a map file from disk.
func LoadMap(path string, cat *domain.Catalog) (*domain.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()

	m, err := ReadMap(f, cat)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", path, err)
	}
	return m, nil
}

// ReadMap decodes a map document. Unknown layers are skipped; missing
// layers stay null. Any malformed payload fails the whole load.
func ReadMap(r io.Reader, cat *domain.Catalog) (*domain.Map, error) {
	var doc tmxMap
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode map document: %w", err)
	}

	if doc.Width <= 0 || doc.Width != doc.Height {
		return nil, fmt.Errorf("%dx%d: %w", doc.Width, doc.Height, ErrNotSquare)
	}
	if doc.Width > domain.MapSizeMax {
		return nil, fmt.Errorf("size %d over %d: %w", doc.Width, domain.MapSizeMax, ErrMapTooLarge)
	}

	log := logger.Log.WithFields(logrus.Fields{
		"component": "map_loader",
		"size":      doc.Width,
	})

	m, err := domain.NewEmptyMap(doc.Width, cat)
	if err != nil {
		return nil, err
	}

	for _, layer := range doc.Layers {
		slot, ok := layerNames[layer.Name]
		if !ok {
			log.WithField("layer", layer.Name).Debug("Skipping unknown layer.")
			continue
		}

		ids, err := decodeLayer(layer.Data, doc.Width)
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", layer.Name, err)
		}

		if err := m.SetLayer(slot.kind, slot.z, layer.Name, ids, cat); err != nil {
			return nil, err
		}
	}

	for _, group := range doc.ObjectGroups {
		if !isObjectGroup(group.Name) {
			continue
		}
		z, ok := objectGroupNames[group.Name]
		if !ok {
			log.WithField("group", group.Name).Debug("Skipping unknown object group.")
			continue
		}

		for _, o := range group.Objects {
			if !cat.Flags.Contains(o.GID) {
				return nil, fmt.Errorf("group %q: object sprite %d outside catalog", group.Name, o.GID)
			}
			// Objects are anchored at their bottom-left corner in the
			// editor, one tile below where they are drawn.
			pos := domain.Position{X: floorDiv(o.X, domain.TileSize), Y: floorDiv(o.Y-domain.TileSize, domain.TileSize)}
			if !m.InBounds(pos) {
				return nil, fmt.Errorf("group %q: sprite %d at %d,%d: %w", group.Name, o.GID, o.X, o.Y, ErrObjectOffMap)
			}
			m.Objects = append(m.Objects, &domain.Object{ID: o.GID, Pos: pos, Z: z})
		}
	}

	log.WithField("objects", len(m.Objects)).Info("Map loaded.")
	return m, nil
}

// decodeLayer turns a base64 zlib payload into size² tile ids.
func decodeLayer(data tmxData, size int) ([]int, error) {
	if data.Encoding != tmxEncoding || data.Compression != tmxCompression {
		return nil, fmt.Errorf("%s/%s: %w", data.Encoding, data.Compression, ErrUnsupportedEncoding)
	}

	compressed, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(data.Payload), ""))
	if err != nil {
		return nil, fmt.Errorf("base64: %w", err)
	}

	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("zlib: %w", err)
	}
	defer zr.Close()

	// One byte past the expected length is enough to report an
	// oversized payload.
	want := size * size * 4
	raw, err := io.ReadAll(io.LimitReader(zr, int64(want)+1))
	if err != nil {
		return nil, fmt.Errorf("zlib: %w", err)
	}

	if len(raw) != want {
		return nil, fmt.Errorf("got %d bytes, want %d: %w", len(raw), want, ErrPayloadLength)
	}

	words := make([]uint32, size*size)
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, words); err != nil {
		return nil, fmt.Errorf("read tile ids: %w", err)
	}

	ids := make([]int, len(words))
	for i, w := range words {
		ids[i] = int(w)
	}
	return ids, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
