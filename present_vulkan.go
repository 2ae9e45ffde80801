// present_vulkan.go - Vulkan object preparation for GPU presentation hosts

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/FamiPresent
License: GPLv3 or later
*/

/*
present_vulkan.go - Vulkan object preparation for GPU presentation hosts

Hosts that present through Vulkan own the instance, device, queue, swapchain
and per-frame upload themselves; none of that lives here. What does live
here is everything the presentation pass itself defines: the shader modules,
the sampler honoring the configured filter mode, and the descriptor/pipeline
layouts for the texture pipeline's bind group. The host plugs these into its
own render pass and issues Draw(6) with no vertex buffers, exactly like the
software path.
*/

package main

import (
	"fmt"

	vk "github.com/goki/vulkan"
)

// VulkanPresentObjects holds the device objects of one presentation pass.
// All handles belong to the device the host passed in; Destroy releases
// them and must run before the host destroys the device.
type VulkanPresentObjects struct {
	device vk.Device

	VertexModule        vk.ShaderModule
	FragmentModule      vk.ShaderModule
	Sampler             vk.Sampler
	DescriptorSetLayout vk.DescriptorSetLayout
	PipelineLayout      vk.PipelineLayout
}

func vkCheck(op string, result vk.Result) error {
	if result != vk.Success {
		return &VideoError{Operation: op, Details: fmt.Sprintf("vulkan result %d", result)}
	}
	return nil
}

// NewVulkanPresentObjects builds the texture pipeline's device objects on an
// externally created device. The sampler filter comes from the same
// SamplerConfig the software texture pipeline uses, so a host can switch
// between CPU and GPU presentation without changing filtering behavior.
func NewVulkanPresentObjects(device vk.Device, cfg SamplerConfig) (*VulkanPresentObjects, error) {
	o := &VulkanPresentObjects{device: device}

	var err error
	if o.VertexModule, err = createShaderModule(device, "vertex shader", PresentVertexShaderSPV); err != nil {
		return nil, err
	}
	if o.FragmentModule, err = createShaderModule(device, "fragment shader", PresentFragmentShaderSPV); err != nil {
		o.Destroy()
		return nil, err
	}

	filter := samplerFilter(cfg)
	samplerInfo := vk.SamplerCreateInfo{
		SType:        vk.StructureTypeSamplerCreateInfo,
		MagFilter:    filter,
		MinFilter:    filter,
		MipmapMode:   vk.SamplerMipmapModeNearest,
		AddressModeU: vk.SamplerAddressModeRepeat,
		AddressModeV: vk.SamplerAddressModeRepeat,
		AddressModeW: vk.SamplerAddressModeRepeat,
		// The quad's UVs stay inside [0,1]; the address mode only matters
		// for the half-texel band at the edges, where repeat matches the
		// original hardware presentation.
		AnisotropyEnable: vk.False,
		MaxAnisotropy:    1,
		BorderColor:      vk.BorderColorIntOpaqueBlack,
	}
	if err = vkCheck("sampler creation", vk.CreateSampler(device, &samplerInfo, nil, &o.Sampler)); err != nil {
		o.Destroy()
		return nil, err
	}

	layoutInfo := vk.DescriptorSetLayoutCreateInfo{
		SType:        vk.StructureTypeDescriptorSetLayoutCreateInfo,
		BindingCount: 2,
		PBindings: []vk.DescriptorSetLayoutBinding{
			{
				Binding:         0,
				DescriptorType:  vk.DescriptorTypeSampledImage,
				DescriptorCount: 1,
				StageFlags:      vk.ShaderStageFlags(vk.ShaderStageFragmentBit),
			},
			{
				Binding:         1,
				DescriptorType:  vk.DescriptorTypeSampler,
				DescriptorCount: 1,
				StageFlags:      vk.ShaderStageFlags(vk.ShaderStageFragmentBit),
			},
		},
	}
	if err = vkCheck("descriptor set layout creation",
		vk.CreateDescriptorSetLayout(device, &layoutInfo, nil, &o.DescriptorSetLayout)); err != nil {
		o.Destroy()
		return nil, err
	}

	pipelineLayoutInfo := vk.PipelineLayoutCreateInfo{
		SType:          vk.StructureTypePipelineLayoutCreateInfo,
		SetLayoutCount: 1,
		PSetLayouts:    []vk.DescriptorSetLayout{o.DescriptorSetLayout},
	}
	if err = vkCheck("pipeline layout creation",
		vk.CreatePipelineLayout(device, &pipelineLayoutInfo, nil, &o.PipelineLayout)); err != nil {
		o.Destroy()
		return nil, err
	}

	return o, nil
}

// samplerFilter translates the software sampler's filter mode to its
// Vulkan equivalent, so CPU and GPU presentation filter identically.
func samplerFilter(cfg SamplerConfig) vk.Filter {
	if cfg.Filter == FilterLinear {
		return vk.FilterLinear
	}
	return vk.FilterNearest
}

// shaderModuleInfo wraps SPIR-V words for module creation. CodeSize is in
// bytes, not words.
func shaderModuleInfo(code []uint32) vk.ShaderModuleCreateInfo {
	return vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uint64(len(code) * 4),
		PCode:    code,
	}
}

func createShaderModule(device vk.Device, what string, code []uint32) (vk.ShaderModule, error) {
	info := shaderModuleInfo(code)
	var module vk.ShaderModule
	if err := vkCheck(what+" module creation", vk.CreateShaderModule(device, &info, nil, &module)); err != nil {
		return vk.NullShaderModule, err
	}
	return module, nil
}

// Destroy releases every created object. Safe to call on a partially
// constructed set.
func (o *VulkanPresentObjects) Destroy() {
	if o.PipelineLayout != vk.NullPipelineLayout {
		vk.DestroyPipelineLayout(o.device, o.PipelineLayout, nil)
		o.PipelineLayout = vk.NullPipelineLayout
	}
	if o.DescriptorSetLayout != vk.NullDescriptorSetLayout {
		vk.DestroyDescriptorSetLayout(o.device, o.DescriptorSetLayout, nil)
		o.DescriptorSetLayout = vk.NullDescriptorSetLayout
	}
	if o.Sampler != vk.NullSampler {
		vk.DestroySampler(o.device, o.Sampler, nil)
		o.Sampler = vk.NullSampler
	}
	if o.FragmentModule != vk.NullShaderModule {
		vk.DestroyShaderModule(o.device, o.FragmentModule, nil)
		o.FragmentModule = vk.NullShaderModule
	}
	if o.VertexModule != vk.NullShaderModule {
		vk.DestroyShaderModule(o.device, o.VertexModule, nil)
		o.VertexModule = vk.NullShaderModule
	}
}
