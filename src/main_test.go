package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/KasumiL5x/hmath/src/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumbers(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		values  []float32
		wantErr bool
	}{
		{"1,2,3", 3, []float32{1.0, 2.0, 3.0}, false},
		{" -1.5 , .5,2e1 ", 3, []float32{-1.5, 0.5, 20.0}, false},
		{"4", -1, []float32{4.0}, false},
		{"1,2", 3, nil, true},
		{"1,,2", -1, nil, true},
		{"1,x", 2, nil, true},
		{"inf", 1, nil, true},
		{"", -1, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			values, err := parseNumbers(tc.in, tc.want)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.values, values)
		})
	}
}

func TestParseMatrix(t *testing.T) {
	values, n, err := parseMatrix("1,2;3,4")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []float32{1.0, 2.0, 3.0, 4.0}, values)

	values, n, err = parseMatrix("7")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []float32{7.0}, values)

	_, _, err = parseMatrix("1,2,3;4,5,6")
	assert.Error(t, err)
	_, _, err = parseMatrix("1,2;3")
	assert.Error(t, err)

	v, err := parseVec3("1, 0, -2")
	require.NoError(t, err)
	assert.Equal(t, vec.Vec3{1.0, 0.0, -2.0}, v)
}

func TestAnalyze(t *testing.T) {
	report, err := analyze(2, []float32{1.0, 2.0, 3.0, 4.0}, []float32{5.0, 6.0})
	require.NoError(t, err)

	assert.True(t, report.Invertible)
	assert.InDelta(t, -2.0, report.Determinant, 1e-5)
	require.Len(t, report.Inverse, 2)
	assert.InDeltaSlice(t, []float32{-2.0, 1.0}, report.Inverse[0], 1e-5)
	assert.InDeltaSlice(t, []float32{1.5, -0.5}, report.Inverse[1], 1e-5)
	assert.InDeltaSlice(t, []float32{-4.0, 4.5}, report.Solution, 1e-5)

	report, err = analyze(2, []float32{1.0, 2.0, 3.0, 4.0}, nil)
	require.NoError(t, err)
	assert.Nil(t, report.Solution)

	report, err = analyze(2, []float32{1.0, 2.0, 2.0, 4.0}, []float32{1.0, 1.0})
	require.NoError(t, err)
	assert.False(t, report.Invertible)
	assert.Equal(t, float32(0.0), report.Determinant)

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.JSONEq(t, `{"determinant": 0, "invertible": false}`, string(data))
}

func TestMeshSettingsTransform(t *testing.T) {
	settings := meshSettings{
		translate: vec.Vec3{1.0, 0.0, 0.0},
		axis:      vec.Backward(),
		degrees:   90.0,
		scale:     vec.Vec3{2.0, 2.0, 2.0},
	}

	p := settings.transform().TransformPoint(vec.Right())
	assert.InDeltaSlice(t, []float32{1.0, 2.0, 0.0}, p[:], 1e-5)
}

func TestTransformFile(t *testing.T) {
	obj, err := os.ReadFile("testdata/tetrahedron.obj")
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "tetrahedron.obj")
	require.NoError(t, os.WriteFile(path, obj, 0644))

	probe := vec.Vec3{1.1, 0.1, 0.1}
	err = transformFile(path, meshSettings{
		translate: vec.Vec3{1.0, 0.0, 0.0},
		axis:      vec.Up(),
		scale:     vec.One3(),
		probe:     &probe,
		check:     true,
	})
	require.NoError(t, err)

	moved, err := LoadOBJ(filepath.Join(dir, "tetrahedron.xform.obj"))
	require.NoError(t, err)
	assert.Equal(t, vec.Vec3{1.0, 0.0, 0.0}, moved.Min)
	assert.Equal(t, vec.Vec3{2.0, 1.0, 1.0}, moved.Max)

	data, err := os.ReadFile(filepath.Join(dir, "tetrahedron.json"))
	require.NoError(t, err)

	var info map[string]any
	require.NoError(t, json.Unmarshal(data, &info))
	assert.Equal(t, []any{1.0, 0.0, 0.0}, info["bounding_box_min"])
	assert.Equal(t, true, info["watertight"])
	assert.Equal(t, 4.0, info["triangles"])
	assert.InDelta(t, 1.0, info["determinant"], 1e-6)
	assert.InDelta(t, -0.1, info["signed_distance"], 1e-5)

	err = transformFile(filepath.Join(dir, "missing.obj"), meshSettings{scale: vec.One3()})
	assert.Error(t, err)
}
