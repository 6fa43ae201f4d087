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

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
)

// SaveMap writes m to path, replacing any existing file.
func SaveMap(path string, m *domain.Map) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create map: %w", err)
	}

	if err := WriteMap(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteMap encodes m in the format ReadMap reads.
func WriteMap(w io.Writer, m *domain.Map) error {
	doc := tmxMap{
		Version:     "1.0",
		Orientation: "orthogonal",
		Width:       m.Size,
		Height:      m.Size,
		TileWidth:   domain.TileSize,
		TileHeight:  domain.TileSize,
	}

	for z := enums.ElevationUnderground; z <= enums.ElevationAboveground; z++ {
		for k := enums.LayerTiles; k <= enums.LayerObjects; k++ {
			tm := m.Layer(k, z)
			if tm == nil {
				continue
			}
			payload, err := encodeLayer(tm.IDs())
			if err != nil {
				return fmt.Errorf("layer %s/%s: %w", z, k, err)
			}
			doc.Layers = append(doc.Layers, tmxLayer{
				Name:   LayerName(k, z),
				Width:  m.Size,
				Height: m.Size,
				Data: tmxData{
					Encoding:    tmxEncoding,
					Compression: tmxCompression,
					Payload:     payload,
				},
			})
		}
	}

	for z := enums.ElevationUnderground; z <= enums.ElevationAboveground; z++ {
		group := tmxObjectGroup{Name: ObjectGroupName(z)}
		for _, o := range m.Objects {
			if o.Z != z {
				continue
			}
			group.Objects = append(group.Objects, tmxObject{
				GID: o.ID,
				X:   o.Pos.X * domain.TileSize,
				Y:   (o.Pos.Y + 1) * domain.TileSize,
			})
		}
		if len(group.Objects) > 0 {
			doc.ObjectGroups = append(doc.ObjectGroups, group)
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", " ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode map document: %w", err)
	}
	return enc.Flush()
}

func encodeLayer(ids []int) (string, error) {
	words := make([]uint32, len(ids))
	for i, id := range ids {
		words[i] = uint32(id)
	}

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if err := binary.Write(zw, binary.LittleEndian, words); err != nil {
		return "", err
	}
	if err := zw.Close(); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
