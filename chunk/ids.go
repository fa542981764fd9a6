// SPDX-License-Identifier: GPL-2.0-or-later

package chunk

import "fmt"

const (
	NULL_CHUNK    = 0x0000
	M3DMAGIC      = 0x4D4D
	SMAGIC        = 0x2D2D
	LMAGIC        = 0x2D3D
	MLIBMAGIC     = 0x3DAA
	MATMAGIC      = 0x3DFF
	CMAGIC        = 0xC23D
	M3D_VERSION   = 0x0002
	M3D_KFVERSION = 0x0005

	COLOR_F          = 0x0010
	COLOR_24         = 0x0011
	LIN_COLOR_24     = 0x0012
	LIN_COLOR_F      = 0x0013
	INT_PERCENTAGE   = 0x0030
	FLOAT_PERCENTAGE = 0x0031

	MDATA            = 0x3D3D
	MESH_VERSION     = 0x3D3E
	MASTER_SCALE     = 0x0100
	LO_SHADOW_BIAS   = 0x1400
	HI_SHADOW_BIAS   = 0x1410
	SHADOW_MAP_SIZE  = 0x1420
	SHADOW_SAMPLES   = 0x1430
	SHADOW_RANGE     = 0x1440
	SHADOW_FILTER    = 0x1450
	RAY_BIAS         = 0x1460
	O_CONSTS         = 0x1500
	AMBIENT_LIGHT    = 0x2100
	BIT_MAP          = 0x1100
	SOLID_BGND       = 0x1200
	V_GRADIENT       = 0x1300
	USE_BIT_MAP      = 0x1101
	USE_SOLID_BGND   = 0x1201
	USE_V_GRADIENT   = 0x1301
	FOG              = 0x2200
	FOG_BGND         = 0x2210
	LAYER_FOG        = 0x2302
	DISTANCE_CUE     = 0x2300
	DCUE_BGND        = 0x2310
	USE_FOG          = 0x2201
	USE_LAYER_FOG    = 0x2303
	USE_DISTANCE_CUE = 0x2301

	MAT_ENTRY        = 0xAFFF
	MAT_NAME         = 0xA000
	MAT_AMBIENT      = 0xA010
	MAT_DIFFUSE      = 0xA020
	MAT_SPECULAR     = 0xA030
	MAT_SHININESS    = 0xA040
	MAT_SHIN2PCT     = 0xA041
	MAT_TRANSPARENCY = 0xA050
	MAT_XPFALL       = 0xA052
	MAT_USE_XPFALL   = 0xA240
	MAT_REFBLUR      = 0xA053
	MAT_SHADING      = 0xA100
	MAT_USE_REFBLUR  = 0xA250
	MAT_SELF_ILLUM   = 0xA080
	MAT_TWO_SIDE     = 0xA081
	MAT_DECAL        = 0xA082
	MAT_ADDITIVE     = 0xA083
	MAT_SELF_ILPCT   = 0xA084
	MAT_WIRE         = 0xA085
	MAT_FACEMAP      = 0xA088
	MAT_PHONGSOFT    = 0xA08C
	MAT_WIREABS      = 0xA08E
	MAT_WIRE_SIZE    = 0xA087
	MAT_TEXMAP       = 0xA200
	MAT_TEXMASK      = 0xA33E
	MAT_TEX2MAP      = 0xA33A
	MAT_TEX2MASK     = 0xA340
	MAT_OPACMAP      = 0xA210
	MAT_OPACMASK     = 0xA342
	MAT_BUMPMAP      = 0xA230
	MAT_BUMPMASK     = 0xA344
	MAT_SPECMAP      = 0xA204
	MAT_SPECMASK     = 0xA348
	MAT_SHINMAP      = 0xA33C
	MAT_SHINMASK     = 0xA346
	MAT_SELFIMAP     = 0xA33D
	MAT_SELFIMASK    = 0xA34A
	MAT_REFLMAP      = 0xA220
	MAT_REFLMASK     = 0xA34C
	MAT_ACUBIC       = 0xA310
	MAT_MAPNAME      = 0xA300
	MAT_MAP_TILING   = 0xA351
	MAT_MAP_TEXBLUR  = 0xA353
	MAT_MAP_USCALE   = 0xA354
	MAT_MAP_VSCALE   = 0xA356
	MAT_MAP_UOFFSET  = 0xA358
	MAT_MAP_VOFFSET  = 0xA35A
	MAT_MAP_ANG      = 0xA35C
	MAT_MAP_COL1     = 0xA360
	MAT_MAP_COL2     = 0xA362
	MAT_MAP_RCOL     = 0xA364
	MAT_MAP_GCOL     = 0xA366
	MAT_MAP_BCOL     = 0xA368

	NAMED_OBJECT        = 0x4000
	N_DIRECT_LIGHT      = 0x4600
	DL_OFF              = 0x4620
	DL_OUTER_RANGE      = 0x465A
	DL_INNER_RANGE      = 0x4659
	DL_MULTIPLIER       = 0x465B
	DL_EXCLUDE          = 0x4654
	DL_ATTENUATE        = 0x4625
	DL_SPOTLIGHT        = 0x4610
	DL_SPOT_ROLL        = 0x4656
	DL_SHADOWED         = 0x4630
	DL_LOCAL_SHADOW2    = 0x4641
	DL_SEE_CONE         = 0x4650
	DL_SPOT_RECTANGULAR = 0x4651
	DL_SPOT_ASPECT      = 0x4657
	DL_SPOT_PROJECTOR   = 0x4653
	DL_SPOT_OVERSHOOT   = 0x4652
	DL_RAY_BIAS         = 0x4658
	DL_RAYSHAD          = 0x4627
	N_CAMERA            = 0x4700
	CAM_SEE_CONE        = 0x4710
	CAM_RANGES          = 0x4720
	OBJ_HIDDEN          = 0x4010
	OBJ_VIS_LOFTER      = 0x4011
	OBJ_DOESNT_CAST     = 0x4012
	OBJ_MATTE           = 0x4013
	OBJ_FAST            = 0x4014
	OBJ_PROCEDURAL      = 0x4015
	OBJ_FROZEN          = 0x4016
	OBJ_DONT_RCVSHADOW  = 0x4017
	N_TRI_OBJECT        = 0x4100
	POINT_ARRAY         = 0x4110
	POINT_FLAG_ARRAY    = 0x4111
	FACE_ARRAY          = 0x4120
	MSH_MAT_GROUP       = 0x4130
	TEX_VERTS           = 0x4140
	SMOOTH_GROUP        = 0x4150
	MESH_MATRIX         = 0x4160
	MESH_COLOR          = 0x4165
	MESH_TEXTURE_INFO   = 0x4170
	MSH_BOXMAP          = 0x4190

	KFDATA             = 0xB000
	AMBIENT_NODE_TAG   = 0xB001
	OBJECT_NODE_TAG    = 0xB002
	CAMERA_NODE_TAG    = 0xB003
	TARGET_NODE_TAG    = 0xB004
	LIGHT_NODE_TAG     = 0xB005
	L_TARGET_NODE_TAG  = 0xB006
	SPOTLIGHT_NODE_TAG = 0xB007
	KFSEG              = 0xB008
	KFCURTIME          = 0xB009
	KFHDR              = 0xB00A
	NODE_HDR           = 0xB010
	INSTANCE_NAME      = 0xB011
	PIVOT              = 0xB013
	BOUNDBOX           = 0xB014
	MORPH_SMOOTH       = 0xB015
	POS_TRACK_TAG      = 0xB020
	ROT_TRACK_TAG      = 0xB021
	SCL_TRACK_TAG      = 0xB022
	FOV_TRACK_TAG      = 0xB023
	ROLL_TRACK_TAG     = 0xB024
	COL_TRACK_TAG      = 0xB025
	MORPH_TRACK_TAG    = 0xB026
	HOT_TRACK_TAG      = 0xB027
	FALL_TRACK_TAG     = 0xB028
	HIDE_TRACK_TAG     = 0xB029
	NODE_ID            = 0xB030

	DEFAULT_VIEW    = 0x3000
	VIEW_TOP        = 0x3010
	VIEW_BOTTOM     = 0x3020
	VIEW_LEFT       = 0x3030
	VIEW_RIGHT      = 0x3040
	VIEW_FRONT      = 0x3050
	VIEW_BACK       = 0x3060
	VIEW_USER       = 0x3070
	VIEW_CAMERA     = 0x3080
	VIEW_WINDOW     = 0x3090
	VIEWPORT_LAYOUT = 0x7001
	VIEWPORT_DATA   = 0x7011
	VIEWPORT_DATA_3 = 0x7012
	VIEWPORT_SIZE   = 0x7020
)

var names = map[uint16]string{
	M3DMAGIC: "M3DMAGIC", SMAGIC: "SMAGIC", LMAGIC: "LMAGIC", MLIBMAGIC: "MLIBMAGIC",
	MATMAGIC: "MATMAGIC", CMAGIC: "CMAGIC", M3D_VERSION: "M3D_VERSION",
	M3D_KFVERSION: "M3D_KFVERSION",

	COLOR_F: "COLOR_F", COLOR_24: "COLOR_24", LIN_COLOR_24: "LIN_COLOR_24",
	LIN_COLOR_F: "LIN_COLOR_F", INT_PERCENTAGE: "INT_PERCENTAGE",
	FLOAT_PERCENTAGE: "FLOAT_PERCENTAGE",

	MDATA: "MDATA", MESH_VERSION: "MESH_VERSION", MASTER_SCALE: "MASTER_SCALE",
	LO_SHADOW_BIAS: "LO_SHADOW_BIAS", HI_SHADOW_BIAS: "HI_SHADOW_BIAS",
	SHADOW_MAP_SIZE: "SHADOW_MAP_SIZE", SHADOW_SAMPLES: "SHADOW_SAMPLES",
	SHADOW_RANGE: "SHADOW_RANGE", SHADOW_FILTER: "SHADOW_FILTER", RAY_BIAS: "RAY_BIAS",
	O_CONSTS: "O_CONSTS", AMBIENT_LIGHT: "AMBIENT_LIGHT", BIT_MAP: "BIT_MAP",
	SOLID_BGND: "SOLID_BGND", V_GRADIENT: "V_GRADIENT", USE_BIT_MAP: "USE_BIT_MAP",
	USE_SOLID_BGND: "USE_SOLID_BGND", USE_V_GRADIENT: "USE_V_GRADIENT", FOG: "FOG",
	FOG_BGND: "FOG_BGND", LAYER_FOG: "LAYER_FOG", DISTANCE_CUE: "DISTANCE_CUE",
	DCUE_BGND: "DCUE_BGND", USE_FOG: "USE_FOG", USE_LAYER_FOG: "USE_LAYER_FOG",
	USE_DISTANCE_CUE: "USE_DISTANCE_CUE",

	MAT_ENTRY: "MAT_ENTRY", MAT_NAME: "MAT_NAME", MAT_AMBIENT: "MAT_AMBIENT",
	MAT_DIFFUSE: "MAT_DIFFUSE", MAT_SPECULAR: "MAT_SPECULAR", MAT_SHININESS: "MAT_SHININESS",
	MAT_SHIN2PCT: "MAT_SHIN2PCT", MAT_TRANSPARENCY: "MAT_TRANSPARENCY",
	MAT_XPFALL: "MAT_XPFALL", MAT_USE_XPFALL: "MAT_USE_XPFALL", MAT_REFBLUR: "MAT_REFBLUR",
	MAT_SHADING: "MAT_SHADING", MAT_USE_REFBLUR: "MAT_USE_REFBLUR",
	MAT_SELF_ILLUM: "MAT_SELF_ILLUM", MAT_TWO_SIDE: "MAT_TWO_SIDE", MAT_DECAL: "MAT_DECAL",
	MAT_ADDITIVE: "MAT_ADDITIVE", MAT_SELF_ILPCT: "MAT_SELF_ILPCT", MAT_WIRE: "MAT_WIRE",
	MAT_FACEMAP: "MAT_FACEMAP", MAT_PHONGSOFT: "MAT_PHONGSOFT", MAT_WIREABS: "MAT_WIREABS",
	MAT_WIRE_SIZE: "MAT_WIRE_SIZE", MAT_TEXMAP: "MAT_TEXMAP", MAT_TEXMASK: "MAT_TEXMASK",
	MAT_TEX2MAP: "MAT_TEX2MAP", MAT_TEX2MASK: "MAT_TEX2MASK", MAT_OPACMAP: "MAT_OPACMAP",
	MAT_OPACMASK: "MAT_OPACMASK", MAT_BUMPMAP: "MAT_BUMPMAP", MAT_BUMPMASK: "MAT_BUMPMASK",
	MAT_SPECMAP: "MAT_SPECMAP", MAT_SPECMASK: "MAT_SPECMASK", MAT_SHINMAP: "MAT_SHINMAP",
	MAT_SHINMASK: "MAT_SHINMASK", MAT_SELFIMAP: "MAT_SELFIMAP", MAT_SELFIMASK: "MAT_SELFIMASK",
	MAT_REFLMAP: "MAT_REFLMAP", MAT_REFLMASK: "MAT_REFLMASK", MAT_ACUBIC: "MAT_ACUBIC",
	MAT_MAPNAME: "MAT_MAPNAME", MAT_MAP_TILING: "MAT_MAP_TILING",
	MAT_MAP_TEXBLUR: "MAT_MAP_TEXBLUR", MAT_MAP_USCALE: "MAT_MAP_USCALE",
	MAT_MAP_VSCALE: "MAT_MAP_VSCALE", MAT_MAP_UOFFSET: "MAT_MAP_UOFFSET",
	MAT_MAP_VOFFSET: "MAT_MAP_VOFFSET", MAT_MAP_ANG: "MAT_MAP_ANG",
	MAT_MAP_COL1: "MAT_MAP_COL1", MAT_MAP_COL2: "MAT_MAP_COL2", MAT_MAP_RCOL: "MAT_MAP_RCOL",
	MAT_MAP_GCOL: "MAT_MAP_GCOL", MAT_MAP_BCOL: "MAT_MAP_BCOL",

	NAMED_OBJECT: "NAMED_OBJECT", N_DIRECT_LIGHT: "N_DIRECT_LIGHT", DL_OFF: "DL_OFF",
	DL_OUTER_RANGE: "DL_OUTER_RANGE", DL_INNER_RANGE: "DL_INNER_RANGE",
	DL_MULTIPLIER: "DL_MULTIPLIER", DL_EXCLUDE: "DL_EXCLUDE", DL_ATTENUATE: "DL_ATTENUATE",
	DL_SPOTLIGHT: "DL_SPOTLIGHT", DL_SPOT_ROLL: "DL_SPOT_ROLL", DL_SHADOWED: "DL_SHADOWED",
	DL_LOCAL_SHADOW2: "DL_LOCAL_SHADOW2", DL_SEE_CONE: "DL_SEE_CONE",
	DL_SPOT_RECTANGULAR: "DL_SPOT_RECTANGULAR", DL_SPOT_ASPECT: "DL_SPOT_ASPECT",
	DL_SPOT_PROJECTOR: "DL_SPOT_PROJECTOR", DL_SPOT_OVERSHOOT: "DL_SPOT_OVERSHOOT",
	DL_RAY_BIAS: "DL_RAY_BIAS", DL_RAYSHAD: "DL_RAYSHAD", N_CAMERA: "N_CAMERA",
	CAM_SEE_CONE: "CAM_SEE_CONE", CAM_RANGES: "CAM_RANGES", OBJ_HIDDEN: "OBJ_HIDDEN",
	OBJ_VIS_LOFTER: "OBJ_VIS_LOFTER", OBJ_DOESNT_CAST: "OBJ_DOESNT_CAST",
	OBJ_MATTE: "OBJ_MATTE", OBJ_FAST: "OBJ_FAST", OBJ_PROCEDURAL: "OBJ_PROCEDURAL",
	OBJ_FROZEN: "OBJ_FROZEN", OBJ_DONT_RCVSHADOW: "OBJ_DONT_RCVSHADOW",
	N_TRI_OBJECT: "N_TRI_OBJECT", POINT_ARRAY: "POINT_ARRAY",
	POINT_FLAG_ARRAY: "POINT_FLAG_ARRAY", FACE_ARRAY: "FACE_ARRAY",
	MSH_MAT_GROUP: "MSH_MAT_GROUP", TEX_VERTS: "TEX_VERTS", SMOOTH_GROUP: "SMOOTH_GROUP",
	MESH_MATRIX: "MESH_MATRIX", MESH_COLOR: "MESH_COLOR",
	MESH_TEXTURE_INFO: "MESH_TEXTURE_INFO", MSH_BOXMAP: "MSH_BOXMAP",

	KFDATA: "KFDATA", AMBIENT_NODE_TAG: "AMBIENT_NODE_TAG",
	OBJECT_NODE_TAG: "OBJECT_NODE_TAG", CAMERA_NODE_TAG: "CAMERA_NODE_TAG",
	TARGET_NODE_TAG: "TARGET_NODE_TAG", LIGHT_NODE_TAG: "LIGHT_NODE_TAG",
	L_TARGET_NODE_TAG: "L_TARGET_NODE_TAG", SPOTLIGHT_NODE_TAG: "SPOTLIGHT_NODE_TAG",
	KFSEG: "KFSEG", KFCURTIME: "KFCURTIME", KFHDR: "KFHDR", NODE_HDR: "NODE_HDR",
	INSTANCE_NAME: "INSTANCE_NAME", PIVOT: "PIVOT", BOUNDBOX: "BOUNDBOX",
	MORPH_SMOOTH: "MORPH_SMOOTH", POS_TRACK_TAG: "POS_TRACK_TAG",
	ROT_TRACK_TAG: "ROT_TRACK_TAG", SCL_TRACK_TAG: "SCL_TRACK_TAG",
	FOV_TRACK_TAG: "FOV_TRACK_TAG", ROLL_TRACK_TAG: "ROLL_TRACK_TAG",
	COL_TRACK_TAG: "COL_TRACK_TAG", MORPH_TRACK_TAG: "MORPH_TRACK_TAG",
	HOT_TRACK_TAG: "HOT_TRACK_TAG", FALL_TRACK_TAG: "FALL_TRACK_TAG",
	HIDE_TRACK_TAG: "HIDE_TRACK_TAG", NODE_ID: "NODE_ID",

	DEFAULT_VIEW: "DEFAULT_VIEW", VIEW_TOP: "VIEW_TOP", VIEW_BOTTOM: "VIEW_BOTTOM",
	VIEW_LEFT: "VIEW_LEFT", VIEW_RIGHT: "VIEW_RIGHT", VIEW_FRONT: "VIEW_FRONT",
	VIEW_BACK: "VIEW_BACK", VIEW_USER: "VIEW_USER", VIEW_CAMERA: "VIEW_CAMERA",
	VIEW_WINDOW: "VIEW_WINDOW", VIEWPORT_LAYOUT: "VIEWPORT_LAYOUT",
	VIEWPORT_DATA: "VIEWPORT_DATA", VIEWPORT_DATA_3: "VIEWPORT_DATA_3",
	VIEWPORT_SIZE: "VIEWPORT_SIZE",
}

// Name returns the symbolic name of a chunk id.
func Name(id uint16) string {
	if n, ok := names[id]; ok {
		return n
	}
	return fmt.Sprintf("0x%04X", id)
}
