package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/KasumiL5x/hmath/src/mat"
	"github.com/KasumiL5x/hmath/src/vec"
	"github.com/chewxy/math32"
)

type Triangle [3]uint32

type edgeKey struct {
	A, B uint32
}

// line kinds kept so a transformed mesh is written back in the order it was read
const (
	linePassthrough = iota
	lineVertex
	lineNormal
	lineFace
)

type objLine struct {
	kind int
	text string
}

type Mesh struct {
	Vertices  []vec.Vec3
	Normals   []vec.Vec3
	Triangles []Triangle
	Min       vec.Vec3 // Bounding box bottom corner
	Max       vec.Vec3 // Bounding box top corner

	faces [][3]string // "v/vt/vn" tokens as read, parallel to Triangles
	lines []objLine
}

var errNotInvertible = errors.New("transform is not invertible")

// LoadOBJ loads a mesh from an OBJ file.
func LoadOBJ(filepath string) (*Mesh, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadOBJ(file)
}

// ReadOBJ parses positions, normals and triangular faces and calculates the
// bounding box. Every other line is kept verbatim for WriteOBJ.
func ReadOBJ(r io.Reader) (*Mesh, error) {
	model := &Mesh{}

	lineNumber := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNumber++
		raw := scanner.Text()
		tokens := strings.Fields(raw)
		if len(tokens) == 0 || strings.HasPrefix(tokens[0], "#") {
			model.lines = append(model.lines, objLine{linePassthrough, raw})
			continue
		}

		switch tokens[0] {
		case "v", "vn":
			if len(tokens) != 4 {
				return nil, fmt.Errorf("line %d: expected 3 coordinates: %s", lineNumber, raw)
			}

			var v vec.Vec3
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(tokens[i+1], 32)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNumber, err)
				}
				v[i] = float32(f)
			}

			if tokens[0] == "v" {
				model.Vertices = append(model.Vertices, v)
				model.lines = append(model.lines, objLine{lineVertex, raw})
			} else {
				model.Normals = append(model.Normals, v)
				model.lines = append(model.lines, objLine{lineNormal, raw})
			}

		case "f":
			if len(tokens) != 4 {
				return nil, fmt.Errorf("line %d: only triangular faces supported: %s", lineNumber, raw)
			}

			var triangle Triangle
			for i := 0; i < 3; i++ {
				idx, err := strconv.Atoi(strings.Split(tokens[i+1], "/")[0])
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNumber, err)
				}
				if idx < 1 || idx > len(model.Vertices) {
					return nil, fmt.Errorf("line %d: vertex index %d out of range", lineNumber, idx)
				}
				triangle[i] = uint32(idx - 1)
			}

			model.Triangles = append(model.Triangles, triangle)
			model.faces = append(model.faces, [3]string{tokens[1], tokens[2], tokens[3]})
			model.lines = append(model.lines, objLine{lineFace, raw})

		default:
			model.lines = append(model.lines, objLine{linePassthrough, raw})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(model.Vertices) == 0 {
		return nil, fmt.Errorf("mesh has no vertices")
	}

	model.updateBounds()

	return model, nil
}

func (m *Mesh) updateBounds() {
	m.Min = vec.Vec3{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32}
	m.Max = vec.Vec3{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32}

	for _, v := range m.Vertices {
		m.Min = m.Min.Min(v)
		m.Max = m.Max.Max(v)
	}
}

// Watertight reports whether every edge is shared by exactly two triangles.
func (m *Mesh) Watertight() bool {
	edgeCount := make(map[edgeKey]int)

	for _, triangle := range m.Triangles {
		edges := [3][2]uint32{
			{triangle[0], triangle[1]},
			{triangle[1], triangle[2]},
			{triangle[2], triangle[0]},
		}

		for _, e := range edges {
			// Sort the edge to make it undirected
			a, b := e[0], e[1]
			if a > b {
				a, b = b, a
			}
			edgeCount[edgeKey{A: a, B: b}]++
		}
	}

	for _, count := range edgeCount {
		if count != 2 {
			return false
		}
	}

	return len(edgeCount) > 0
}

// Transform moves positions by t and normals by its normal matrix, then
// recomputes the bounding box. A mirroring transform also reverses the
// winding of every face so they keep facing outwards.
func (m *Mesh) Transform(t mat.Mat4) error {
	det := t.Determinant()
	if det == 0.0 {
		return errNotInvertible
	}

	normalMatrix, ok := mat.NormalMatrix(t)
	if !ok && len(m.Normals) > 0 {
		return errNotInvertible
	}

	for i, v := range m.Vertices {
		m.Vertices[i] = t.TransformPoint(v)
	}

	for i, n := range m.Normals {
		m.Normals[i] = normalMatrix.MulVec(n).Normalized()
	}

	if det < 0.0 {
		m.FlipWinding()
	}

	m.updateBounds()

	return nil
}

// FlipWinding reverses the vertex order of every triangle.
func (m *Mesh) FlipWinding() {
	for i := range m.Triangles {
		m.Triangles[i][1], m.Triangles[i][2] = m.Triangles[i][2], m.Triangles[i][1]
		m.faces[i][1], m.faces[i][2] = m.faces[i][2], m.faces[i][1]
	}
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

// WriteOBJ writes the mesh back in the order it was read, with positions,
// normals and faces replaced by their current values.
func (m *Mesh) WriteOBJ(w io.Writer) error {
	out := bufio.NewWriter(w)
	var vi, ni, fi int

	for _, line := range m.lines {
		var err error

		switch line.kind {
		case lineVertex:
			v := m.Vertices[vi]
			vi++
			_, err = fmt.Fprintf(out, "v %s %s %s\n", formatFloat(v[0]), formatFloat(v[1]), formatFloat(v[2]))
		case lineNormal:
			n := m.Normals[ni]
			ni++
			_, err = fmt.Fprintf(out, "vn %s %s %s\n", formatFloat(n[0]), formatFloat(n[1]), formatFloat(n[2]))
		case lineFace:
			f := m.faces[fi]
			fi++
			_, err = fmt.Fprintf(out, "f %s %s %s\n", f[0], f[1], f[2])
		default:
			_, err = fmt.Fprintln(out, line.text)
		}

		if err != nil {
			return err
		}
	}

	return out.Flush()
}

// SaveOBJ writes the mesh to filepath.
func (m *Mesh) SaveOBJ(filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}

	if err := m.WriteOBJ(file); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

/*
Signed distance from point p to triangle defined by a, b, and c. Points
behind a counter-clockwise triangle are negative.
*/
func distance(p, a, b, c vec.Vec3) float32 {
	ba := b.Sub(a)
	pa := p.Sub(a)
	cb := c.Sub(b)
	pb := p.Sub(b)
	ac := a.Sub(c)
	pc := p.Sub(c)
	n := ba.Cross(ac)

	sign := float32(1.0)
	if n.Dot(p.Sub(a.Add(b).Add(c).Scale(1.0/3.0))) > 0.0 {
		sign = -1.0
	}

	// outside the prism over the triangle, the closest point is on an edge
	if vec.Sign(ba.Cross(n).Dot(pa))+
		vec.Sign(cb.Cross(n).Dot(pb))+
		vec.Sign(ac.Cross(n).Dot(pc)) < 2.0 {
		return math32.Copysign(math32.Sqrt(vec.Min3(
			ba.Scale(vec.Saturate(ba.Dot(pa)/ba.SqrLength())).Sub(pa).SqrLength(),
			cb.Scale(vec.Saturate(cb.Dot(pb)/cb.SqrLength())).Sub(pb).SqrLength(),
			ac.Scale(vec.Saturate(ac.Dot(pc)/ac.SqrLength())).Sub(pc).SqrLength())), sign)
	}

	return math32.Copysign(math32.Sqrt(n.Dot(pa)*n.Dot(pa)/n.SqrLength()), sign)
}

/*
Signed distance from point p to closest point on mesh, using brute force.
*/
func (m *Mesh) SignedDistance(p vec.Vec3) float32 {
	minDistance := math32.Inf(1)

	for _, triangle := range m.Triangles {
		d := distance(p, m.Vertices[triangle[0]], m.Vertices[triangle[1]], m.Vertices[triangle[2]])

		if d == 0.0 {
			return 0.0
		}

		if math32.Abs(d) < math32.Abs(minDistance) {
			minDistance = d
		}
	}

	return minDistance
}
