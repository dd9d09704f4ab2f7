// Package gpu offloads the all-pairs gravitational acceleration sum to a
// WebGPU compute shader when the body count justifies it. Acquisition is
// best-effort: construction failures are expected on hosts without a usable
// adapter and simply cause the caller to fall back to a CPU backend.
package gpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/saagar210/OrbitForge/vector3"
)

const workgroupSize = 64

const shaderSource = `
struct Body {
    px: f32, py: f32, pz: f32, mass: f32,
};

struct Params {
    count: u32,
    g: f32,
    softening_sq: f32,
    pad: u32,
};

@group(0) @binding(0) var<storage, read> bodies: array<Body>;
@group(0) @binding(1) var<storage, read_write> accels: array<vec4<f32>>;
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(64)
fn main(@builtin(global_invocation_id) gid: vec3<u32>) {
    let i = gid.x;
    if (i >= params.count) { return; }

    var ax: f32 = 0.0;
    var ay: f32 = 0.0;
    var az: f32 = 0.0;

    let pi = bodies[i];

    for (var j: u32 = 0u; j < params.count; j = j + 1u) {
        if (j == i) { continue; }
        let pj = bodies[j];
        let dx = pj.px - pi.px;
        let dy = pj.py - pi.py;
        let dz = pj.pz - pi.pz;
        let dist_sq = dx * dx + dy * dy + dz * dz + params.softening_sq;
        let inv_dist = inverseSqrt(dist_sq);
        let inv_dist3 = inv_dist * inv_dist * inv_dist;
        let f = params.g * pj.mass * inv_dist3;
        ax = ax + dx * f;
        ay = ay + dy * f;
        az = az + dz * f;
    }

    accels[i] = vec4<f32>(ax, ay, az, 0.0);
}
`

// Kernel holds the adapter-bound resources needed to dispatch the all-pairs
// shader; it is stateless between invocations beyond that handle, matching
// the source material's "fresh upload per tick is acceptable at these
// sizes" design note.
type Kernel struct {
	device          *wgpu.Device
	queue           *wgpu.Queue
	pipeline        *wgpu.ComputePipeline
	bindGroupLayout *wgpu.BindGroupLayout
}

// New probes for a WebGPU adapter headlessly (no surface) and builds the
// gravity compute pipeline. It returns ok=false whenever any step fails,
// which the caller should log once and treat as permanent absence.
func New() (k *Kernel, ok bool) {
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, false
	}

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "orbitforge_gravity_device",
	})
	if err != nil {
		return nil, false
	}

	shader, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "orbitforge_gravity_shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaderSource},
	})
	if err != nil {
		return nil, false
	}
	defer shader.Release()

	bgl, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "orbitforge_gravity_bgl",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageCompute,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeReadOnlyStorage},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageCompute,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeStorage},
			},
			{
				Binding:    2,
				Visibility: wgpu.ShaderStageCompute,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return nil, false
	}

	layout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "orbitforge_gravity_pl",
		BindGroupLayouts: []*wgpu.BindGroupLayout{bgl},
	})
	if err != nil {
		return nil, false
	}

	pipeline, err := device.CreateComputePipeline(&wgpu.ComputePipelineDescriptor{
		Label:  "orbitforge_gravity_pipeline",
		Layout: layout,
		Compute: wgpu.ProgrammableStageDescriptor{
			Module:     shader,
			EntryPoint: "main",
		},
	})
	if err != nil {
		return nil, false
	}

	return &Kernel{
		device:          device,
		queue:           device.GetQueue(),
		pipeline:        pipeline,
		bindGroupLayout: bgl,
	}, true
}

// ComputeAccelerations packs positions and masses into the body buffer,
// dispatches ceil(n/64) workgroups of the gravity shader, and reads the
// resulting accelerations back widened to double precision. Fixed bodies
// are not special-cased here: callers zero their contribution after the
// call, matching the host-side responsibility described for the kernel.
func (k *Kernel) ComputeAccelerations(positions []vector3.Vector3, masses []float64, g, softeningSq float64) ([]vector3.Vector3, error) {
	n := len(positions)
	if n == 0 {
		return nil, nil
	}

	bodyData := make([]byte, n*4*4)
	for i, p := range positions {
		v := mgl32.Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
		off := i * 16
		binary.LittleEndian.PutUint32(bodyData[off:off+4], math.Float32bits(v[0]))
		binary.LittleEndian.PutUint32(bodyData[off+4:off+8], math.Float32bits(v[1]))
		binary.LittleEndian.PutUint32(bodyData[off+8:off+12], math.Float32bits(v[2]))
		binary.LittleEndian.PutUint32(bodyData[off+12:off+16], math.Float32bits(float32(masses[i])))
	}

	bodyBuf, err := k.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "orbitforge_body_buf",
		Contents: bodyData,
		Usage:    wgpu.BufferUsageStorage,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create body buffer: %w", err)
	}
	defer bodyBuf.Release()

	accelSize := uint64(n * 4 * 4)
	accelBuf, err := k.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "orbitforge_accel_buf",
		Size:  accelSize,
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create accel buffer: %w", err)
	}
	defer accelBuf.Release()

	readbackBuf, err := k.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "orbitforge_readback_buf",
		Size:  accelSize,
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create readback buffer: %w", err)
	}
	defer readbackBuf.Release()

	params := make([]byte, 16)
	binary.LittleEndian.PutUint32(params[0:4], uint32(n))
	binary.LittleEndian.PutUint32(params[4:8], math.Float32bits(float32(g)))
	binary.LittleEndian.PutUint32(params[8:12], math.Float32bits(float32(softeningSq)))
	binary.LittleEndian.PutUint32(params[12:16], 0)

	paramsBuf, err := k.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "orbitforge_params_buf",
		Contents: params,
		Usage:    wgpu.BufferUsageUniform,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create params buffer: %w", err)
	}
	defer paramsBuf.Release()

	bindGroup, err := k.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "orbitforge_gravity_bg",
		Layout: k.bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: bodyBuf, Size: uint64(len(bodyData))},
			{Binding: 1, Buffer: accelBuf, Size: accelSize},
			{Binding: 2, Buffer: paramsBuf, Size: uint64(len(params))},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create bind group: %w", err)
	}
	defer bindGroup.Release()

	encoder, err := k.device.CreateCommandEncoder(nil)
	if err != nil {
		return nil, fmt.Errorf("gpu: create command encoder: %w", err)
	}

	pass := encoder.BeginComputePass(nil)
	pass.SetPipeline(k.pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	workgroups := uint32((n + workgroupSize - 1) / workgroupSize)
	pass.DispatchWorkgroups(workgroups, 1, 1)
	pass.End()

	encoder.CopyBufferToBuffer(accelBuf, 0, readbackBuf, 0, accelSize)
	cmd, err := encoder.Finish(nil)
	if err != nil {
		return nil, fmt.Errorf("gpu: finish command encoder: %w", err)
	}
	k.queue.Submit(cmd)

	mapped, mapErr := false, error(nil)
	readbackBuf.MapAsync(wgpu.MapModeRead, 0, accelSize, func(status wgpu.BufferMapAsyncStatus) {
		if status != wgpu.BufferMapAsyncStatusSuccess {
			mapErr = fmt.Errorf("gpu: map accel readback failed: %d", status)
		}
		mapped = true
	})
	for !mapped {
		k.device.Poll(false, nil)
	}
	if mapErr != nil {
		return nil, mapErr
	}

	data := readbackBuf.GetMappedRange(0, uint(accelSize))
	result := make([]vector3.Vector3, n)
	for i := 0; i < n; i++ {
		off := i * 16
		ax := math.Float32frombits(binary.LittleEndian.Uint32(data[off : off+4]))
		ay := math.Float32frombits(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		az := math.Float32frombits(binary.LittleEndian.Uint32(data[off+8 : off+12]))
		result[i] = vector3.New(float64(ax), float64(ay), float64(az))
	}
	readbackBuf.Unmap()

	return result, nil
}

// Release frees the device and pipeline resources held by the kernel.
func (k *Kernel) Release() {
	if k == nil {
		return
	}
	k.pipeline.Release()
	k.bindGroupLayout.Release()
	k.device.Release()
}
