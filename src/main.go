package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/KasumiL5x/hmath/src/mat"
	"github.com/KasumiL5x/hmath/src/vec"
)

type matrixReport struct {
	Determinant float32     `json:"determinant"`
	Invertible  bool        `json:"invertible"`
	Inverse     [][]float32 `json:"inverse,omitempty"`
	Solution    []float32   `json:"solution,omitempty"`
}

type meshSettings struct {
	translate vec.Vec3
	axis      vec.Vec3
	degrees   float32
	scale     vec.Vec3
	probe     *vec.Vec3
	check     bool
}

func main() {
	log.SetFlags(0)

	matrixPtr := flag.String("m", "", "Square matrix, rows separated by ';' and values by ',', e.g. \"1,2;3,4\"")
	rhsPtr := flag.String("b", "", "Optional right hand side to solve for, e.g. \"5,6\"")
	filePathPtr := flag.String("obj", "", ".obj file to transform")
	translatePtr := flag.String("translate", "0,0,0", "Translation x,y,z")
	rotatePtr := flag.Float64("rotate", 0.0, "Rotation in degrees about -axis")
	axisPtr := flag.String("axis", "0,1,0", "Rotation axis x,y,z")
	scalePtr := flag.String("scale", "1,1,1", "Scale x,y,z")
	probePtr := flag.String("probe", "", "Optional point x,y,z to measure the signed distance to the transformed mesh")
	checkFilePtr := flag.Bool("check", false, "Report edges shared by triangles with opposite winding")
	flag.Parse()

	switch {
	case *filePathPtr != "":
		settings := meshSettings{degrees: float32(*rotatePtr), check: *checkFilePtr}
		var err error

		if settings.translate, err = parseVec3(*translatePtr); err != nil {
			log.Fatalf("Invalid translation: %v", err)
		}
		if settings.axis, err = parseVec3(*axisPtr); err != nil {
			log.Fatalf("Invalid rotation axis: %v", err)
		}
		if settings.scale, err = parseVec3(*scalePtr); err != nil {
			log.Fatalf("Invalid scale: %v", err)
		}
		if *probePtr != "" {
			p, err := parseVec3(*probePtr)
			if err != nil {
				log.Fatalf("Invalid probe point: %v", err)
			}
			settings.probe = &p
		}

		if err := transformFile(*filePathPtr, settings); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case *matrixPtr != "":
		values, n, err := parseMatrix(*matrixPtr)
		if err != nil {
			log.Fatalf("Invalid matrix: %v", err)
		}

		var b []float32
		if *rhsPtr != "" {
			if b, err = parseNumbers(*rhsPtr, n); err != nil {
				log.Fatalf("Invalid right hand side: %v", err)
			}
		}

		report, err := analyze(n, values, b)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		jsonData, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		fmt.Println(string(jsonData))

	default:
		flag.Usage()
		os.Exit(1)
	}
}

// analyze inverts the n x n matrix and, when b is given, solves for it in
// the same elimination pass. A singular matrix is reported, not an error.
func analyze(n int, values, b []float32) (matrixReport, error) {
	inverse := make([]float32, n*n)

	var x []float32
	if b != nil {
		x = make([]float32, n)
	}

	det, err := mat.GaussianElimination(n, values, inverse, b, x, nil, 0, nil)
	if errors.Is(err, mat.ErrSingular) {
		return matrixReport{}, nil
	}
	if err != nil {
		return matrixReport{}, err
	}

	report := matrixReport{Determinant: det, Invertible: true, Solution: x}
	for r := 0; r < n; r++ {
		report.Inverse = append(report.Inverse, inverse[r*n:(r+1)*n])
	}

	return report, nil
}

// transform scales first, then rotates, then translates.
func (s meshSettings) transform() mat.Mat4 {
	return mat.Translation(s.translate).
		Mul(mat.RotationAxis(s.axis, vec.Radians(s.degrees))).
		Mul(mat.Scaling(s.scale))
}

func transformFile(path string, settings meshSettings) error {
	fmt.Println("Loading 3D model...")

	mesh, err := LoadOBJ(path)
	if err != nil {
		return fmt.Errorf("loading mesh: %w", err)
	}

	fmt.Printf("%d vertices, %d normals, %d triangles\n", len(mesh.Vertices), len(mesh.Normals), len(mesh.Triangles))

	if settings.check {
		fmt.Println("Verifying mesh...")
		if !mesh.Watertight() {
			fmt.Println("Warning: mesh is not watertight.")
		}
		if n := mesh.InconsistentWindings(); n > 0 {
			fmt.Printf("Warning: %d adjacent triangle pairs are inverted! Check your 3D model.\n", n)
		}
	}

	xform := settings.transform()
	if err := mesh.Transform(xform); err != nil {
		return fmt.Errorf("transforming mesh: %w", err)
	}

	fmt.Println("Writing files...")

	ext := filepath.Ext(path)
	pathNoExt := strings.TrimSuffix(path, ext)

	if err := mesh.SaveOBJ(pathNoExt + ".xform" + ext); err != nil {
		return fmt.Errorf("saving mesh: %w", err)
	}

	info := map[string]any{
		"bounding_box_min": mesh.Min,
		"bounding_box_max": mesh.Max,
		"vertices":         len(mesh.Vertices),
		"triangles":        len(mesh.Triangles),
		"watertight":       mesh.Watertight(),
		"transform":        [4]vec.Vec4{xform.Row(0), xform.Row(1), xform.Row(2), xform.Row(3)},
		"determinant":      xform.Determinant(),
		"mesh_data":        pathNoExt + ".xform" + ext,
	}
	if settings.probe != nil && len(mesh.Triangles) > 0 {
		info["probe"] = *settings.probe
		info["signed_distance"] = mesh.SignedDistance(*settings.probe)
	}

	jsonData, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(pathNoExt+".json", jsonData, 0644); err != nil {
		return fmt.Errorf("saving json: %w", err)
	}

	fmt.Println("All done. Bye.")

	return nil
}
