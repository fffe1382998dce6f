package meshing

import (
	"bufio"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// WriteOBJ записывает поверхность в формате Wavefront OBJ.
// Индексы в OBJ начинаются с единицы, нормали идут парой к вершинам.
func WriteOBJ(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# voxel surface: %d faces, %d vertices\n", m.FaceCount(), m.VertexCount())
	fmt.Fprintln(bw, "o surface")
	for i := 0; i+2 < len(m.Positions); i += 3 {
		fmt.Fprintf(bw, "v %g %g %g\n", m.Positions[i], m.Positions[i+1], m.Positions[i+2])
	}
	for i := 0; i+2 < len(m.Normals); i += 3 {
		fmt.Fprintf(bw, "vn %g %g %g\n", m.Normals[i], m.Normals[i+1], m.Normals[i+2])
	}

	// Соседние квады с одной текстурой идут одной группой usemtl
	material := ""
	for q := 0; q < m.FaceCount(); q++ {
		if tex := m.Texture(q); tex != material {
			material = tex
			fmt.Fprintf(bw, "usemtl %s\n", material)
		}
		quad := m.Indices[q*len(quadIndices) : (q+1)*len(quadIndices)]
		for i := 0; i+2 < len(quad); i += 3 {
			a, b, c := quad[i]+1, quad[i+1]+1, quad[i+2]+1
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("запись OBJ: %w", err)
	}
	return nil
}

// WriteCompressedOBJ записывает OBJ, сжатый zstd
func WriteCompressedOBJ(w io.Writer, m *Mesh) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("создание zstd компрессора: %w", err)
	}

	if err := WriteOBJ(enc, m); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("сжатие OBJ: %w", err)
	}
	return nil
}
