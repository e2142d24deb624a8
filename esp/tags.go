package esp

import "github.com/arloliu/tes3/format"

// Record tags.
var (
	TagTES3 = format.NewTag("TES3")
	TagGMST = format.NewTag("GMST")
	TagGLOB = format.NewTag("GLOB")
	TagCLAS = format.NewTag("CLAS")
	TagFACT = format.NewTag("FACT")
	TagRACE = format.NewTag("RACE")
	TagSOUN = format.NewTag("SOUN")
	TagSNDG = format.NewTag("SNDG")
	TagSKIL = format.NewTag("SKIL")
	TagMGEF = format.NewTag("MGEF")
	TagSCPT = format.NewTag("SCPT")
	TagREGN = format.NewTag("REGN")
	TagBSGN = format.NewTag("BSGN")
	TagSSCR = format.NewTag("SSCR")
	TagLTEX = format.NewTag("LTEX")
	TagSPEL = format.NewTag("SPEL")
	TagSTAT = format.NewTag("STAT")
	TagDOOR = format.NewTag("DOOR")
	TagMISC = format.NewTag("MISC")
	TagWEAP = format.NewTag("WEAP")
	TagCONT = format.NewTag("CONT")
	TagCREA = format.NewTag("CREA")
	TagBODY = format.NewTag("BODY")
	TagLIGH = format.NewTag("LIGH")
	TagENCH = format.NewTag("ENCH")
	TagNPC_ = format.NewTag("NPC_")
	TagARMO = format.NewTag("ARMO")
	TagCLOT = format.NewTag("CLOT")
	TagREPA = format.NewTag("REPA")
	TagACTI = format.NewTag("ACTI")
	TagAPPA = format.NewTag("APPA")
	TagLOCK = format.NewTag("LOCK")
	TagPROB = format.NewTag("PROB")
	TagINGR = format.NewTag("INGR")
	TagBOOK = format.NewTag("BOOK")
	TagALCH = format.NewTag("ALCH")
	TagLEVI = format.NewTag("LEVI")
	TagLEVC = format.NewTag("LEVC")
	TagCELL = format.NewTag("CELL")
	TagLAND = format.NewTag("LAND")
	TagPGRD = format.NewTag("PGRD")
	TagDIAL = format.NewTag("DIAL")
	TagINFO = format.NewTag("INFO")
)

// Chunk tags.
var (
	tagAADT = format.NewTag("AADT")
	tagAI_A = format.NewTag("AI_A")
	tagAI_E = format.NewTag("AI_E")
	tagAI_F = format.NewTag("AI_F")
	tagAI_T = format.NewTag("AI_T")
	tagAI_W = format.NewTag("AI_W")
	tagAIDT = format.NewTag("AIDT")
	tagALDT = format.NewTag("ALDT")
	tagAMBI = format.NewTag("AMBI")
	tagANAM = format.NewTag("ANAM")
	tagAODT = format.NewTag("AODT")
	tagASND = format.NewTag("ASND")
	tagAVFX = format.NewTag("AVFX")
	tagBKDT = format.NewTag("BKDT")
	tagBNAM = format.NewTag("BNAM")
	tagBSND = format.NewTag("BSND")
	tagBVFX = format.NewTag("BVFX")
	tagBYDT = format.NewTag("BYDT")
	tagCLDT = format.NewTag("CLDT")
	tagCNAM = format.NewTag("CNAM")
	tagCNDT = format.NewTag("CNDT")
	tagCSND = format.NewTag("CSND")
	tagCTDT = format.NewTag("CTDT")
	tagCVFX = format.NewTag("CVFX")
	tagDATA = format.NewTag("DATA")
	tagDELE = format.NewTag("DELE")
	tagDESC = format.NewTag("DESC")
	tagDNAM = format.NewTag("DNAM")
	tagDODT = format.NewTag("DODT")
	tagENAM = format.NewTag("ENAM")
	tagENDT = format.NewTag("ENDT")
	tagFADT = format.NewTag("FADT")
	tagFLAG = format.NewTag("FLAG")
	tagFLTV = format.NewTag("FLTV")
	tagFNAM = format.NewTag("FNAM")
	tagFRMR = format.NewTag("FRMR")
	tagHEDR = format.NewTag("HEDR")
	tagHSND = format.NewTag("HSND")
	tagHVFX = format.NewTag("HVFX")
	tagINAM = format.NewTag("INAM")
	tagINDX = format.NewTag("INDX")
	tagINTV = format.NewTag("INTV")
	tagIRDT = format.NewTag("IRDT")
	tagITEX = format.NewTag("ITEX")
	tagKNAM = format.NewTag("KNAM")
	tagLHDT = format.NewTag("LHDT")
	tagLKDT = format.NewTag("LKDT")
	tagMAST = format.NewTag("MAST")
	tagMCDT = format.NewTag("MCDT")
	tagMEDT = format.NewTag("MEDT")
	tagMODL = format.NewTag("MODL")
	tagMVRF = format.NewTag("MVRF")
	tagNAM0 = format.NewTag("NAM0")
	tagNAM5 = format.NewTag("NAM5")
	tagNAM9 = format.NewTag("NAM9")
	tagNAME = format.NewTag("NAME")
	tagNNAM = format.NewTag("NNAM")
	tagNPCO = format.NewTag("NPCO")
	tagNPCS = format.NewTag("NPCS")
	tagNPDT = format.NewTag("NPDT")
	tagONAM = format.NewTag("ONAM")
	tagPBDT = format.NewTag("PBDT")
	tagPGRC = format.NewTag("PGRC")
	tagPGRP = format.NewTag("PGRP")
	tagPNAM = format.NewTag("PNAM")
	tagPTEX = format.NewTag("PTEX")
	tagQSTF = format.NewTag("QSTF")
	tagQSTN = format.NewTag("QSTN")
	tagQSTR = format.NewTag("QSTR")
	tagRADT = format.NewTag("RADT")
	tagRGNN = format.NewTag("RGNN")
	tagRIDT = format.NewTag("RIDT")
	tagRNAM = format.NewTag("RNAM")
	tagSCDT = format.NewTag("SCDT")
	tagSCHD = format.NewTag("SCHD")
	tagSCRI = format.NewTag("SCRI")
	tagSCTX = format.NewTag("SCTX")
	tagSCVR = format.NewTag("SCVR")
	tagSKDT = format.NewTag("SKDT")
	tagSNAM = format.NewTag("SNAM")
	tagSPDT = format.NewTag("SPDT")
	tagSTRV = format.NewTag("STRV")
	tagTEXT = format.NewTag("TEXT")
	tagTNAM = format.NewTag("TNAM")
	tagUNAM = format.NewTag("UNAM")
	tagVCLR = format.NewTag("VCLR")
	tagVHGT = format.NewTag("VHGT")
	tagVNML = format.NewTag("VNML")
	tagVTEX = format.NewTag("VTEX")
	tagWEAT = format.NewTag("WEAT")
	tagWHGT = format.NewTag("WHGT")
	tagWNAM = format.NewTag("WNAM")
	tagWPDT = format.NewTag("WPDT")
	tagXCHG = format.NewTag("XCHG")
	tagXSCL = format.NewTag("XSCL")
	tagXSOL = format.NewTag("XSOL")
)
