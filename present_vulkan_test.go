// present_vulkan_test.go - Tests for the device-free Vulkan prep pieces

package main

import (
	"errors"
	"strings"
	"testing"

	vk "github.com/goki/vulkan"
)

func TestVkCheck(t *testing.T) {
	if err := vkCheck("sampler creation", vk.Success); err != nil {
		t.Errorf("success result produced error: %v", err)
	}

	err := vkCheck("sampler creation", vk.ErrorOutOfDeviceMemory)
	if err == nil {
		t.Fatal("failure result produced no error")
	}
	var verr *VideoError
	if !errors.As(err, &verr) {
		t.Fatalf("error type %T, want *VideoError", err)
	}
	if verr.Operation != "sampler creation" {
		t.Errorf("operation = %q, want %q", verr.Operation, "sampler creation")
	}
	if !strings.Contains(err.Error(), "vulkan result") {
		t.Errorf("error %q does not name the vulkan result", err.Error())
	}
}

func TestSamplerFilterTranslation(t *testing.T) {
	tests := []struct {
		cfg  SamplerConfig
		want vk.Filter
	}{
		{SamplerConfig{Filter: FilterNearest}, vk.FilterNearest},
		{SamplerConfig{Filter: FilterLinear}, vk.FilterLinear},
		{SamplerConfig{}, vk.FilterNearest}, // zero value defaults to nearest
	}
	for _, tt := range tests {
		if got := samplerFilter(tt.cfg); got != tt.want {
			t.Errorf("samplerFilter(%v) = %v, want %v", tt.cfg.Filter, got, tt.want)
		}
	}
}

func TestShaderModuleInfoSizesInBytes(t *testing.T) {
	for name, code := range map[string][]uint32{
		"vertex":   PresentVertexShaderSPV,
		"fragment": PresentFragmentShaderSPV,
	} {
		info := shaderModuleInfo(code)
		if want := uint64(len(code)) * 4; info.CodeSize != want {
			t.Errorf("%s: CodeSize = %d, want %d bytes", name, info.CodeSize, want)
		}
		if len(info.PCode) != len(code) {
			t.Errorf("%s: PCode carries %d words, want %d", name, len(info.PCode), len(code))
		}
		if info.SType != vk.StructureTypeShaderModuleCreateInfo {
			t.Errorf("%s: SType = %v, want shader module create info", name, info.SType)
		}
	}
}
