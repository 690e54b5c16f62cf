package dds

import (
	"fmt"

	"github.com/woozymasta/dds/texture"
)

// DXGIFormat is the numeric texel format code used by DX10 DDS headers.
type DXGIFormat uint32

// The complete DXGI_FORMAT enumeration.
const (
	DXGIFormatUnknown                 DXGIFormat = 0
	DXGIFormatR32G32B32A32Typeless    DXGIFormat = 1
	DXGIFormatR32G32B32A32Float       DXGIFormat = 2
	DXGIFormatR32G32B32A32UInt        DXGIFormat = 3
	DXGIFormatR32G32B32A32SInt        DXGIFormat = 4
	DXGIFormatR32G32B32Typeless       DXGIFormat = 5
	DXGIFormatR32G32B32Float          DXGIFormat = 6
	DXGIFormatR32G32B32UInt           DXGIFormat = 7
	DXGIFormatR32G32B32SInt           DXGIFormat = 8
	DXGIFormatR16G16B16A16Typeless    DXGIFormat = 9
	DXGIFormatR16G16B16A16Float       DXGIFormat = 10
	DXGIFormatR16G16B16A16UNorm       DXGIFormat = 11
	DXGIFormatR16G16B16A16UInt        DXGIFormat = 12
	DXGIFormatR16G16B16A16SNorm       DXGIFormat = 13
	DXGIFormatR16G16B16A16SInt        DXGIFormat = 14
	DXGIFormatR32G32Typeless          DXGIFormat = 15
	DXGIFormatR32G32Float             DXGIFormat = 16
	DXGIFormatR32G32UInt              DXGIFormat = 17
	DXGIFormatR32G32SInt              DXGIFormat = 18
	DXGIFormatR32G8X24Typeless        DXGIFormat = 19
	DXGIFormatD32FloatS8X24UInt       DXGIFormat = 20
	DXGIFormatR32FloatX8X24Typeless   DXGIFormat = 21
	DXGIFormatX32TypelessG8X24UInt    DXGIFormat = 22
	DXGIFormatR10G10B10A2Typeless     DXGIFormat = 23
	DXGIFormatR10G10B10A2UNorm        DXGIFormat = 24
	DXGIFormatR10G10B10A2UInt         DXGIFormat = 25
	DXGIFormatR11G11B10Float          DXGIFormat = 26
	DXGIFormatR8G8B8A8Typeless        DXGIFormat = 27
	DXGIFormatR8G8B8A8UNorm           DXGIFormat = 28
	DXGIFormatR8G8B8A8UNormSRGB       DXGIFormat = 29
	DXGIFormatR8G8B8A8UInt            DXGIFormat = 30
	DXGIFormatR8G8B8A8SNorm           DXGIFormat = 31
	DXGIFormatR8G8B8A8SInt            DXGIFormat = 32
	DXGIFormatR16G16Typeless          DXGIFormat = 33
	DXGIFormatR16G16Float             DXGIFormat = 34
	DXGIFormatR16G16UNorm             DXGIFormat = 35
	DXGIFormatR16G16UInt              DXGIFormat = 36
	DXGIFormatR16G16SNorm             DXGIFormat = 37
	DXGIFormatR16G16SInt              DXGIFormat = 38
	DXGIFormatR32Typeless             DXGIFormat = 39
	DXGIFormatD32Float                DXGIFormat = 40
	DXGIFormatR32Float                DXGIFormat = 41
	DXGIFormatR32UInt                 DXGIFormat = 42
	DXGIFormatR32SInt                 DXGIFormat = 43
	DXGIFormatR24G8Typeless           DXGIFormat = 44
	DXGIFormatD24UNormS8UInt          DXGIFormat = 45
	DXGIFormatR24UNormX8Typeless      DXGIFormat = 46
	DXGIFormatX24TypelessG8UInt       DXGIFormat = 47
	DXGIFormatR8G8Typeless            DXGIFormat = 48
	DXGIFormatR8G8UNorm               DXGIFormat = 49
	DXGIFormatR8G8UInt                DXGIFormat = 50
	DXGIFormatR8G8SNorm               DXGIFormat = 51
	DXGIFormatR8G8SInt                DXGIFormat = 52
	DXGIFormatR16Typeless             DXGIFormat = 53
	DXGIFormatR16Float                DXGIFormat = 54
	DXGIFormatD16UNorm                DXGIFormat = 55
	DXGIFormatR16UNorm                DXGIFormat = 56
	DXGIFormatR16UInt                 DXGIFormat = 57
	DXGIFormatR16SNorm                DXGIFormat = 58
	DXGIFormatR16SInt                 DXGIFormat = 59
	DXGIFormatR8Typeless              DXGIFormat = 60
	DXGIFormatR8UNorm                 DXGIFormat = 61
	DXGIFormatR8UInt                  DXGIFormat = 62
	DXGIFormatR8SNorm                 DXGIFormat = 63
	DXGIFormatR8SInt                  DXGIFormat = 64
	DXGIFormatA8UNorm                 DXGIFormat = 65
	DXGIFormatR1UNorm                 DXGIFormat = 66
	DXGIFormatR9G9B9E5SharedExp       DXGIFormat = 67
	DXGIFormatR8G8B8G8UNorm           DXGIFormat = 68
	DXGIFormatG8R8G8B8UNorm           DXGIFormat = 69
	DXGIFormatBC1Typeless             DXGIFormat = 70
	DXGIFormatBC1UNorm                DXGIFormat = 71
	DXGIFormatBC1UNormSRGB            DXGIFormat = 72
	DXGIFormatBC2Typeless             DXGIFormat = 73
	DXGIFormatBC2UNorm                DXGIFormat = 74
	DXGIFormatBC2UNormSRGB            DXGIFormat = 75
	DXGIFormatBC3Typeless             DXGIFormat = 76
	DXGIFormatBC3UNorm                DXGIFormat = 77
	DXGIFormatBC3UNormSRGB            DXGIFormat = 78
	DXGIFormatBC4Typeless             DXGIFormat = 79
	DXGIFormatBC4UNorm                DXGIFormat = 80
	DXGIFormatBC4SNorm                DXGIFormat = 81
	DXGIFormatBC5Typeless             DXGIFormat = 82
	DXGIFormatBC5UNorm                DXGIFormat = 83
	DXGIFormatBC5SNorm                DXGIFormat = 84
	DXGIFormatB5G6R5UNorm             DXGIFormat = 85
	DXGIFormatB5G5R5A1UNorm           DXGIFormat = 86
	DXGIFormatB8G8R8A8UNorm           DXGIFormat = 87
	DXGIFormatB8G8R8X8UNorm           DXGIFormat = 88
	DXGIFormatR10G10B10XRBiasA2UNorm  DXGIFormat = 89
	DXGIFormatB8G8R8A8Typeless        DXGIFormat = 90
	DXGIFormatB8G8R8A8UNormSRGB       DXGIFormat = 91
	DXGIFormatB8G8R8X8Typeless        DXGIFormat = 92
	DXGIFormatB8G8R8X8UNormSRGB       DXGIFormat = 93
	DXGIFormatBC6HTypeless            DXGIFormat = 94
	DXGIFormatBC6HUF16                DXGIFormat = 95
	DXGIFormatBC6HSF16                DXGIFormat = 96
	DXGIFormatBC7Typeless             DXGIFormat = 97
	DXGIFormatBC7UNorm                DXGIFormat = 98
	DXGIFormatBC7UNormSRGB            DXGIFormat = 99
	DXGIFormatAYUV                    DXGIFormat = 100
	DXGIFormatY410                    DXGIFormat = 101
	DXGIFormatY416                    DXGIFormat = 102
	DXGIFormatNV12                    DXGIFormat = 103
	DXGIFormatP010                    DXGIFormat = 104
	DXGIFormatP016                    DXGIFormat = 105
	DXGIFormat420Opaque               DXGIFormat = 106
	DXGIFormatYUY2                    DXGIFormat = 107
	DXGIFormatY210                    DXGIFormat = 108
	DXGIFormatY216                    DXGIFormat = 109
	DXGIFormatNV11                    DXGIFormat = 110
	DXGIFormatAI44                    DXGIFormat = 111
	DXGIFormatIA44                    DXGIFormat = 112
	DXGIFormatP8                      DXGIFormat = 113
	DXGIFormatA8P8                    DXGIFormat = 114
	DXGIFormatB4G4R4A4UNorm           DXGIFormat = 115
	DXGIFormatP208                    DXGIFormat = 130
	DXGIFormatV208                    DXGIFormat = 131
	DXGIFormatV408                    DXGIFormat = 132
)

// knownDXGIFormat reports whether v is a defined DXGI_FORMAT value.
func knownDXGIFormat(v uint32) bool {
	return v <= 115 || (v >= 130 && v <= 132)
}

func (f DXGIFormat) String() string {
	if name, ok := dxgiNames[f]; ok {
		return name
	}
	return fmt.Sprintf("DXGI_FORMAT(%d)", uint32(f))
}

var dxgiNames = map[DXGIFormat]string{
	DXGIFormatUnknown:                "UNKNOWN",
	DXGIFormatR32G32B32A32Typeless:   "R32G32B32A32_TYPELESS",
	DXGIFormatR32G32B32A32Float:      "R32G32B32A32_FLOAT",
	DXGIFormatR32G32B32A32UInt:       "R32G32B32A32_UINT",
	DXGIFormatR32G32B32A32SInt:       "R32G32B32A32_SINT",
	DXGIFormatR32G32B32Typeless:      "R32G32B32_TYPELESS",
	DXGIFormatR32G32B32Float:         "R32G32B32_FLOAT",
	DXGIFormatR32G32B32UInt:          "R32G32B32_UINT",
	DXGIFormatR32G32B32SInt:          "R32G32B32_SINT",
	DXGIFormatR16G16B16A16Typeless:   "R16G16B16A16_TYPELESS",
	DXGIFormatR16G16B16A16Float:      "R16G16B16A16_FLOAT",
	DXGIFormatR16G16B16A16UNorm:      "R16G16B16A16_UNORM",
	DXGIFormatR16G16B16A16UInt:       "R16G16B16A16_UINT",
	DXGIFormatR16G16B16A16SNorm:      "R16G16B16A16_SNORM",
	DXGIFormatR16G16B16A16SInt:       "R16G16B16A16_SINT",
	DXGIFormatR32G32Typeless:         "R32G32_TYPELESS",
	DXGIFormatR32G32Float:            "R32G32_FLOAT",
	DXGIFormatR32G32UInt:             "R32G32_UINT",
	DXGIFormatR32G32SInt:             "R32G32_SINT",
	DXGIFormatR32G8X24Typeless:       "R32G8X24_TYPELESS",
	DXGIFormatD32FloatS8X24UInt:      "D32_FLOAT_S8X24_UINT",
	DXGIFormatR32FloatX8X24Typeless:  "R32_FLOAT_X8X24_TYPELESS",
	DXGIFormatX32TypelessG8X24UInt:   "X32_TYPELESS_G8X24_UINT",
	DXGIFormatR10G10B10A2Typeless:    "R10G10B10A2_TYPELESS",
	DXGIFormatR10G10B10A2UNorm:       "R10G10B10A2_UNORM",
	DXGIFormatR10G10B10A2UInt:        "R10G10B10A2_UINT",
	DXGIFormatR11G11B10Float:         "R11G11B10_FLOAT",
	DXGIFormatR8G8B8A8Typeless:       "R8G8B8A8_TYPELESS",
	DXGIFormatR8G8B8A8UNorm:          "R8G8B8A8_UNORM",
	DXGIFormatR8G8B8A8UNormSRGB:      "R8G8B8A8_UNORM_SRGB",
	DXGIFormatR8G8B8A8UInt:           "R8G8B8A8_UINT",
	DXGIFormatR8G8B8A8SNorm:          "R8G8B8A8_SNORM",
	DXGIFormatR8G8B8A8SInt:           "R8G8B8A8_SINT",
	DXGIFormatR16G16Typeless:         "R16G16_TYPELESS",
	DXGIFormatR16G16Float:            "R16G16_FLOAT",
	DXGIFormatR16G16UNorm:            "R16G16_UNORM",
	DXGIFormatR16G16UInt:             "R16G16_UINT",
	DXGIFormatR16G16SNorm:            "R16G16_SNORM",
	DXGIFormatR16G16SInt:             "R16G16_SINT",
	DXGIFormatR32Typeless:            "R32_TYPELESS",
	DXGIFormatD32Float:               "D32_FLOAT",
	DXGIFormatR32Float:               "R32_FLOAT",
	DXGIFormatR32UInt:                "R32_UINT",
	DXGIFormatR32SInt:                "R32_SINT",
	DXGIFormatR24G8Typeless:          "R24G8_TYPELESS",
	DXGIFormatD24UNormS8UInt:         "D24_UNORM_S8_UINT",
	DXGIFormatR24UNormX8Typeless:     "R24_UNORM_X8_TYPELESS",
	DXGIFormatX24TypelessG8UInt:      "X24_TYPELESS_G8_UINT",
	DXGIFormatR8G8Typeless:           "R8G8_TYPELESS",
	DXGIFormatR8G8UNorm:              "R8G8_UNORM",
	DXGIFormatR8G8UInt:               "R8G8_UINT",
	DXGIFormatR8G8SNorm:              "R8G8_SNORM",
	DXGIFormatR8G8SInt:               "R8G8_SINT",
	DXGIFormatR16Typeless:            "R16_TYPELESS",
	DXGIFormatR16Float:               "R16_FLOAT",
	DXGIFormatD16UNorm:               "D16_UNORM",
	DXGIFormatR16UNorm:               "R16_UNORM",
	DXGIFormatR16UInt:                "R16_UINT",
	DXGIFormatR16SNorm:               "R16_SNORM",
	DXGIFormatR16SInt:                "R16_SINT",
	DXGIFormatR8Typeless:             "R8_TYPELESS",
	DXGIFormatR8UNorm:                "R8_UNORM",
	DXGIFormatR8UInt:                 "R8_UINT",
	DXGIFormatR8SNorm:                "R8_SNORM",
	DXGIFormatR8SInt:                 "R8_SINT",
	DXGIFormatA8UNorm:                "A8_UNORM",
	DXGIFormatR1UNorm:                "R1_UNORM",
	DXGIFormatR9G9B9E5SharedExp:      "R9G9B9E5_SHAREDEXP",
	DXGIFormatR8G8B8G8UNorm:          "R8G8_B8G8_UNORM",
	DXGIFormatG8R8G8B8UNorm:          "G8R8_G8B8_UNORM",
	DXGIFormatBC1Typeless:            "BC1_TYPELESS",
	DXGIFormatBC1UNorm:               "BC1_UNORM",
	DXGIFormatBC1UNormSRGB:           "BC1_UNORM_SRGB",
	DXGIFormatBC2Typeless:            "BC2_TYPELESS",
	DXGIFormatBC2UNorm:               "BC2_UNORM",
	DXGIFormatBC2UNormSRGB:           "BC2_UNORM_SRGB",
	DXGIFormatBC3Typeless:            "BC3_TYPELESS",
	DXGIFormatBC3UNorm:               "BC3_UNORM",
	DXGIFormatBC3UNormSRGB:           "BC3_UNORM_SRGB",
	DXGIFormatBC4Typeless:            "BC4_TYPELESS",
	DXGIFormatBC4UNorm:               "BC4_UNORM",
	DXGIFormatBC4SNorm:               "BC4_SNORM",
	DXGIFormatBC5Typeless:            "BC5_TYPELESS",
	DXGIFormatBC5UNorm:               "BC5_UNORM",
	DXGIFormatBC5SNorm:               "BC5_SNORM",
	DXGIFormatB5G6R5UNorm:            "B5G6R5_UNORM",
	DXGIFormatB5G5R5A1UNorm:          "B5G5R5A1_UNORM",
	DXGIFormatB8G8R8A8UNorm:          "B8G8R8A8_UNORM",
	DXGIFormatB8G8R8X8UNorm:          "B8G8R8X8_UNORM",
	DXGIFormatR10G10B10XRBiasA2UNorm: "R10G10B10_XR_BIAS_A2_UNORM",
	DXGIFormatB8G8R8A8Typeless:       "B8G8R8A8_TYPELESS",
	DXGIFormatB8G8R8A8UNormSRGB:      "B8G8R8A8_UNORM_SRGB",
	DXGIFormatB8G8R8X8Typeless:       "B8G8R8X8_TYPELESS",
	DXGIFormatB8G8R8X8UNormSRGB:      "B8G8R8X8_UNORM_SRGB",
	DXGIFormatBC6HTypeless:           "BC6H_TYPELESS",
	DXGIFormatBC6HUF16:               "BC6H_UF16",
	DXGIFormatBC6HSF16:               "BC6H_SF16",
	DXGIFormatBC7Typeless:            "BC7_TYPELESS",
	DXGIFormatBC7UNorm:               "BC7_UNORM",
	DXGIFormatBC7UNormSRGB:           "BC7_UNORM_SRGB",
	DXGIFormatAYUV:                   "AYUV",
	DXGIFormatY410:                   "Y410",
	DXGIFormatY416:                   "Y416",
	DXGIFormatNV12:                   "NV12",
	DXGIFormatP010:                   "P010",
	DXGIFormatP016:                   "P016",
	DXGIFormat420Opaque:              "420_OPAQUE",
	DXGIFormatYUY2:                   "YUY2",
	DXGIFormatY210:                   "Y210",
	DXGIFormatY216:                   "Y216",
	DXGIFormatNV11:                   "NV11",
	DXGIFormatAI44:                   "AI44",
	DXGIFormatIA44:                   "IA44",
	DXGIFormatP8:                     "P8",
	DXGIFormatA8P8:                   "A8P8",
	DXGIFormatB4G4R4A4UNorm:          "B4G4R4A4_UNORM",
	DXGIFormatP208:                   "P208",
	DXGIFormatV208:                   "V208",
	DXGIFormatV408:                   "V408",
}

// Dimensionality is the DX10 resource dimension field.
type Dimensionality uint32

const (
	Texture1D Dimensionality = 2
	Texture2D Dimensionality = 3
	Texture3D Dimensionality = 4
)

// AlphaMode is the DX10 miscFlags2 alpha interpretation.
type AlphaMode uint32

const (
	AlphaModeUnknown       AlphaMode = 0
	AlphaModeStraight      AlphaMode = 1
	AlphaModePremultiplied AlphaMode = 2
	AlphaModeOpaque        AlphaMode = 3
	AlphaModeCustom        AlphaMode = 4
)

func alphaFromMode(mode AlphaMode, mask uint32) texture.AlphaFormat {
	switch mode {
	case AlphaModeStraight:
		return texture.AlphaFormat{Kind: texture.AlphaStraight, Mask: mask}
	case AlphaModePremultiplied:
		return texture.AlphaFormat{Kind: texture.AlphaPremultiplied, Mask: mask}
	case AlphaModeOpaque:
		return texture.AlphaFormat{Kind: texture.AlphaOpaque}
	}
	return texture.AlphaFormat{Kind: texture.AlphaCustom, Mask: mask}
}

func modeFromAlpha(alpha texture.AlphaFormat) AlphaMode {
	switch alpha.Kind {
	case texture.AlphaStraight:
		return AlphaModeStraight
	case texture.AlphaPremultiplied:
		return AlphaModePremultiplied
	case texture.AlphaOpaque:
		return AlphaModeOpaque
	}
	return AlphaModeCustom
}

func rgb(r, g, b uint32, srgb bool) texture.ColorFormat {
	return texture.ColorFormat{Model: texture.ColorRGB, Masks: [3]uint32{r, g, b}, SRGB: srgb}
}

// dxgiToFormat translates the DXGI code to a semantic format. Only the
// BC1-BC5 variants and the common uncompressed layouts have translations;
// everything else fails with a format error.
func dxgiToFormat(f DXGIFormat, mode AlphaMode) (texture.Format, error) {
	switch f {
	case DXGIFormatBC1UNorm:
		return texture.BC1(false), nil
	case DXGIFormatBC1UNormSRGB:
		return texture.BC1(true), nil
	case DXGIFormatBC2UNorm:
		return texture.BC2(false), nil
	case DXGIFormatBC2UNormSRGB:
		return texture.BC2(true), nil
	case DXGIFormatBC3UNorm:
		return texture.BC3(false), nil
	case DXGIFormatBC3UNormSRGB:
		return texture.BC3(true), nil
	case DXGIFormatBC4UNorm:
		return texture.BC4(false), nil
	case DXGIFormatBC4SNorm:
		return texture.BC4(true), nil
	case DXGIFormatBC5UNorm:
		return texture.BC5(false), nil
	case DXGIFormatBC5SNorm:
		return texture.BC5(true), nil

	case DXGIFormatR8G8B8A8UNorm:
		return texture.Uncompressed(4, rgb(0xFF, 0xFF00, 0xFF0000, false), alphaFromMode(mode, 0xFF000000)), nil
	case DXGIFormatR8G8B8A8UNormSRGB:
		return texture.Uncompressed(4, rgb(0xFF, 0xFF00, 0xFF0000, true), alphaFromMode(mode, 0xFF000000)), nil
	case DXGIFormatB8G8R8A8UNorm:
		return texture.Uncompressed(4, rgb(0xFF0000, 0xFF00, 0xFF, false), alphaFromMode(mode, 0xFF000000)), nil
	case DXGIFormatB8G8R8A8UNormSRGB:
		return texture.Uncompressed(4, rgb(0xFF0000, 0xFF00, 0xFF, true), alphaFromMode(mode, 0xFF000000)), nil
	case DXGIFormatR8G8UNorm:
		return texture.Uncompressed(2, rgb(0xFF, 0xFF00, 0, false), texture.AlphaFormat{Kind: texture.AlphaOpaque}), nil
	case DXGIFormatR8UNorm:
		return texture.Uncompressed(1, texture.ColorFormat{
			Model: texture.ColorLuminance, Masks: [3]uint32{0xFF, 0, 0},
		}, texture.AlphaFormat{Kind: texture.AlphaOpaque}), nil
	case DXGIFormatA8UNorm:
		return texture.Uncompressed(1, texture.ColorFormat{Model: texture.ColorNone},
			alphaFromMode(mode, 0xFF)), nil
	case DXGIFormatB5G6R5UNorm:
		return texture.Uncompressed(2, rgb(0xF800, 0x7E0, 0x1F, false), texture.AlphaFormat{Kind: texture.AlphaOpaque}), nil
	case DXGIFormatB5G5R5A1UNorm:
		return texture.Uncompressed(2, rgb(0x7C00, 0x3E0, 0x1F, false), alphaFromMode(mode, 0x8000)), nil
	case DXGIFormatB4G4R4A4UNorm:
		return texture.Uncompressed(2, rgb(0xF00, 0xF0, 0xF, false), alphaFromMode(mode, 0xF000)), nil
	}
	return texture.Format{}, &texture.FormatError{
		Msg: fmt.Sprintf("unsupported DXGI format %s", f),
	}
}

// dxgiFromFormat is the reverse translation for building DX10 headers.
func dxgiFromFormat(f texture.Format) (DXGIFormat, AlphaMode, error) {
	switch f.Kind {
	case texture.FormatBC1:
		if f.SRGB {
			return DXGIFormatBC1UNormSRGB, AlphaModeUnknown, nil
		}
		return DXGIFormatBC1UNorm, AlphaModeUnknown, nil
	case texture.FormatBC2:
		if f.SRGB {
			return DXGIFormatBC2UNormSRGB, AlphaModeUnknown, nil
		}
		return DXGIFormatBC2UNorm, AlphaModeUnknown, nil
	case texture.FormatBC3:
		if f.SRGB {
			return DXGIFormatBC3UNormSRGB, AlphaModeUnknown, nil
		}
		return DXGIFormatBC3UNorm, AlphaModeUnknown, nil
	case texture.FormatBC4:
		if f.Signed {
			return DXGIFormatBC4SNorm, AlphaModeUnknown, nil
		}
		return DXGIFormatBC4UNorm, AlphaModeUnknown, nil
	case texture.FormatBC5:
		if f.Signed {
			return DXGIFormatBC5SNorm, AlphaModeUnknown, nil
		}
		return DXGIFormatBC5UNorm, AlphaModeUnknown, nil
	case texture.FormatUncompressed:
		return dxgiFromUncompressed(f)
	}
	return DXGIFormatUnknown, AlphaModeUnknown, &texture.FormatError{Msg: "unknown format"}
}

func dxgiFromUncompressed(f texture.Format) (DXGIFormat, AlphaMode, error) {
	mode := modeFromAlpha(f.Alpha)
	c := f.Color

	switch {
	case f.Pitch == 4 && c.Model == texture.ColorRGB && c.Masks == [3]uint32{0xFF, 0xFF00, 0xFF0000}:
		if c.SRGB {
			return DXGIFormatR8G8B8A8UNormSRGB, mode, nil
		}
		return DXGIFormatR8G8B8A8UNorm, mode, nil
	case f.Pitch == 4 && c.Model == texture.ColorRGB && c.Masks == [3]uint32{0xFF0000, 0xFF00, 0xFF}:
		if c.SRGB {
			return DXGIFormatB8G8R8A8UNormSRGB, mode, nil
		}
		return DXGIFormatB8G8R8A8UNorm, mode, nil
	case f.Pitch == 2 && c.Model == texture.ColorRGB && c.Masks == [3]uint32{0xFF, 0xFF00, 0}:
		return DXGIFormatR8G8UNorm, mode, nil
	case f.Pitch == 1 && c.Model == texture.ColorLuminance && c.Masks[0] == 0xFF:
		return DXGIFormatR8UNorm, mode, nil
	case f.Pitch == 1 && c.Model == texture.ColorNone && f.Alpha.Mask == 0xFF:
		return DXGIFormatA8UNorm, mode, nil
	case f.Pitch == 2 && c.Model == texture.ColorRGB && c.Masks == [3]uint32{0xF800, 0x7E0, 0x1F}:
		return DXGIFormatB5G6R5UNorm, mode, nil
	case f.Pitch == 2 && c.Model == texture.ColorRGB && c.Masks == [3]uint32{0x7C00, 0x3E0, 0x1F}:
		return DXGIFormatB5G5R5A1UNorm, mode, nil
	case f.Pitch == 2 && c.Model == texture.ColorRGB && c.Masks == [3]uint32{0xF00, 0xF0, 0xF}:
		return DXGIFormatB4G4R4A4UNorm, mode, nil
	}
	return DXGIFormatUnknown, AlphaModeUnknown, &texture.FormatError{
		Msg: "uncompressed layout has no DXGI equivalent",
	}
}
