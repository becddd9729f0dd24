// Code generated from the DICOM dictionary of the FFmpeg DICOM demuxer/decoder
// (libavformat/dicomdict.c): the File Meta Information group (0002), the
// DICOMDIR directory-record group (0004), and the general information
// modules (0008). Do not hand-edit; extend by adding rows.
package tag

import "github.com/clarivue/dicomgray/pkg/dicom/vr"

var dictionary = map[Tag]Entry{
	{0x0002, 0x0000}: {vr.UL, "File Meta Elements Group Len"},
	{0x0002, 0x0001}: {vr.OB, "File Meta Information Version"},
	{0x0002, 0x0002}: {vr.UI, "Media Storage SOP Class UID"},
	{0x0002, 0x0003}: {vr.UI, "Media Storage SOP Inst UID"},
	{0x0002, 0x0010}: {vr.UI, "Transfer Syntax UID"},
	{0x0002, 0x0012}: {vr.UI, "Implementation Class UID"},
	{0x0002, 0x0013}: {vr.SH, "Implementation Version Name"},
	{0x0002, 0x0016}: {vr.AE, "Source Application Entity Title"},
	{0x0002, 0x0017}: {vr.AE, "Sending Application Entity Title"},
	{0x0002, 0x0018}: {vr.AE, "Receiving Application Entity Title"},
	{0x0002, 0x0100}: {vr.UI, "Private Information Creator UID"},
	{0x0002, 0x0102}: {vr.OB, "Private Information"},
	{0x0004, 0x1130}: {vr.CS, "File-set ID"},
	{0x0004, 0x1141}: {vr.CS, "File-set Descriptor File ID"},
	{0x0004, 0x1142}: {vr.CS, "Specific Character Set of File-set Descriptor File"},
	{0x0004, 0x1200}: {vr.UL, "Offset of the First Directory Record of the Root Directory Entity"},
	{0x0004, 0x1202}: {vr.UL, "Offset of the Last Directory Record of the Root Directory Entity"},
	{0x0004, 0x1212}: {vr.US, "File-set Consistency Flag"},
	{0x0004, 0x1220}: {vr.SQ, "Directory Record Sequence"},
	{0x0004, 0x1400}: {vr.UL, "Offset of the Next Directory Record"},
	{0x0004, 0x1410}: {vr.US, "Record In-use Flag"},
	{0x0004, 0x1420}: {vr.UL, "Offset of Referenced Lower-Level Directory Entity"},
	{0x0004, 0x1430}: {vr.CS, "Directory Record Type"},
	{0x0004, 0x1432}: {vr.UI, "Private Record UID"},
	{0x0004, 0x1500}: {vr.CS, "Referenced File ID"},
	{0x0004, 0x1504}: {vr.UL, "MRDR Directory Record Offset"},
	{0x0004, 0x1510}: {vr.UI, "Referenced SOP Class UID in File"},
	{0x0004, 0x1511}: {vr.UI, "Referenced SOP Instance UID in File"},
	{0x0004, 0x1512}: {vr.UI, "Referenced Transfer Syntax UID in File"},
	{0x0004, 0x151A}: {vr.UI, "Referenced Related General SOP Class UID in File"},
	{0x0004, 0x1600}: {vr.UL, "Number of References"},
	{0x0008, 0x0001}: {vr.UL, "Length to End"},
	{0x0008, 0x0005}: {vr.CS, "Specific Character Set"},
	{0x0008, 0x0006}: {vr.SQ, "Language Code Sequence"},
	{0x0008, 0x0008}: {vr.CS, "Image Type"},
	{0x0008, 0x0010}: {vr.SH, "Recognition Code"},
	{0x0008, 0x0012}: {vr.DA, "Instance Creation Date"},
	{0x0008, 0x0013}: {vr.TM, "Instance Creation Time"},
	{0x0008, 0x0014}: {vr.UI, "Instance Creator UID"},
	{0x0008, 0x0015}: {vr.DT, "Instance Create UID"},
	{0x0008, 0x0016}: {vr.UI, "SOP Class UID"},
	{0x0008, 0x0018}: {vr.UI, "SOP Instance UID"},
	{0x0008, 0x001A}: {vr.UI, "Related General SOP Class UID"},
	{0x0008, 0x001B}: {vr.UI, "Original Specialized SOP Class UID"},
	{0x0008, 0x0020}: {vr.DA, "Study Date"},
	{0x0008, 0x0021}: {vr.DA, "Series Date"},
	{0x0008, 0x0022}: {vr.DA, "Acquisition Date"},
	{0x0008, 0x0023}: {vr.DA, "Content Date"},
	{0x0008, 0x0024}: {vr.DA, "Overlay Date"},
	{0x0008, 0x0025}: {vr.DA, "Curve Date"},
	{0x0008, 0x002A}: {vr.DT, "Acquisition DateTime"},
	{0x0008, 0x0030}: {vr.TM, "Study Time"},
	{0x0008, 0x0031}: {vr.TM, "Series Time"},
	{0x0008, 0x0032}: {vr.TM, "Acquisition Time"},
	{0x0008, 0x0033}: {vr.TM, "Content Time"},
	{0x0008, 0x0034}: {vr.TM, "Overlay Time"},
	{0x0008, 0x0035}: {vr.TM, "Curve Time"},
	{0x0008, 0x0040}: {vr.US, "Data Set Type"},
	{0x0008, 0x0041}: {vr.LO, "Data Set Subtype"},
	{0x0008, 0x0042}: {vr.CS, "Nuclear Medicine Series Type"},
	{0x0008, 0x0050}: {vr.SH, "Accession Number"},
	{0x0008, 0x0051}: {vr.SQ, "Issuer of Accession Number Sequence"},
	{0x0008, 0x0052}: {vr.CS, "Query/Retrieve Level"},
	{0x0008, 0x0053}: {vr.CS, "Query/Retrieve View"},
	{0x0008, 0x0054}: {vr.AE, "Retrieve AE Title"},
	{0x0008, 0x0055}: {vr.AE, "Station AE Title"},
	{0x0008, 0x0056}: {vr.CS, "Instance Availability"},
	{0x0008, 0x0058}: {vr.UI, "Failed SOP Instance UID List"},
	{0x0008, 0x0060}: {vr.CS, "Modality"},
	{0x0008, 0x0061}: {vr.CS, "Modalities in Study"},
	{0x0008, 0x0062}: {vr.UI, "SOP Classes in Study"},
	{0x0008, 0x0064}: {vr.CS, "Conversion Type"},
	{0x0008, 0x0068}: {vr.CS, "Presentation Intent Type"},
	{0x0008, 0x0070}: {vr.LO, "Manufacturer"},
	{0x0008, 0x0080}: {vr.LO, "Institution Name"},
	{0x0008, 0x0081}: {vr.ST, "Institution Address"},
	{0x0008, 0x0082}: {vr.SQ, "Institution Code Sequence"},
	{0x0008, 0x0090}: {vr.PN, "Referring Physician's Name"},
	{0x0008, 0x0092}: {vr.ST, "Referring Physician's Address"},
	{0x0008, 0x0094}: {vr.SH, "Referring Physician's Telephone Numbers"},
	{0x0008, 0x0096}: {vr.SQ, "Referring Physician Identification Sequence"},
	{0x0008, 0x009C}: {vr.PN, "Consulting Physician's Name"},
	{0x0008, 0x009D}: {vr.SQ, "Consulting Physician Identification Sequence"},
	{0x0008, 0x0100}: {vr.SH, "Code Value"},
	{0x0008, 0x0101}: {vr.LO, "Extended Code Value"},
	{0x0008, 0x0102}: {vr.SH, "Coding Scheme Designator"},
	{0x0008, 0x0104}: {vr.LO, "Code Meaning"},
	{0x0008, 0x0105}: {vr.CS, "Mapping Resource"},
	{0x0008, 0x0106}: {vr.DT, "Context Group Version"},
	{0x0008, 0x0107}: {vr.DT, "Context Group Local Version"},
	{0x0008, 0x0108}: {vr.LT, "Extended Code Meaning"},
	{0x0008, 0x010C}: {vr.UI, "Coding Scheme UID"},
	{0x0008, 0x010D}: {vr.UI, "Context Group Extension Creator UID"},
	{0x0008, 0x010F}: {vr.CS, "Context Identifier"},
	{0x0008, 0x0110}: {vr.SQ, "Coding Scheme Identification Sequence"},
	{0x0008, 0x0112}: {vr.LO, "Coding Scheme Registry"},
	{0x0008, 0x0114}: {vr.ST, "Coding Scheme External ID"},
	{0x0008, 0x0115}: {vr.ST, "Coding Scheme Name"},
	{0x0008, 0x0116}: {vr.ST, "Coding Scheme Responsible Organization"},
	{0x0008, 0x0117}: {vr.UI, "Context UID"},
	{0x0008, 0x0118}: {vr.UI, "Mapping Resource UID"},
	{0x0008, 0x0119}: {vr.UC, "Long Code Value"},
	{0x0008, 0x0120}: {vr.UR, "URN Code Value"},
	{0x0008, 0x0121}: {vr.SQ, "Equivalent Code Sequence"},
	{0x0008, 0x0122}: {vr.LO, "Mapping Resource Name"},
	{0x0008, 0x0123}: {vr.SQ, "Context Group Identification Sequence"},
	{0x0008, 0x0124}: {vr.SQ, "Mapping Resource Identification Sequence"},
	{0x0008, 0x0201}: {vr.SH, "Timezone Offset From UTC"},
	{0x0008, 0x0300}: {vr.SQ, "Private Data Element Characteristics Sequence"},
	{0x0008, 0x0301}: {vr.US, "Private Group Reference"},
	{0x0008, 0x0302}: {vr.LO, "Private Creator Reference"},
	{0x0008, 0x0303}: {vr.CS, "Block Identifying Information Status"},
	{0x0008, 0x0304}: {vr.US, "Nonidentifying PrivateElements"},
	{0x0008, 0x0305}: {vr.SQ, "Deidentification ActionSequence"},
	{0x0008, 0x0306}: {vr.US, "Identifying PrivateElements"},
	{0x0008, 0x0307}: {vr.CS, "Deidentification Action"},
	{0x0008, 0x1000}: {vr.AE, "Network ID"},
	{0x0008, 0x1010}: {vr.SH, "Station Name"},
	{0x0008, 0x1030}: {vr.LO, "Study Description"},
	{0x0008, 0x1032}: {vr.SQ, "Procedure Code Sequence"},
	{0x0008, 0x103E}: {vr.LO, "Series Description"},
	{0x0008, 0x103F}: {vr.SQ, "Series Description CodeSequence"},
	{0x0008, 0x1040}: {vr.LO, "Institutional Department Name"},
	{0x0008, 0x1048}: {vr.PN, "Physician(s) of Record"},
	{0x0008, 0x1049}: {vr.SQ, "Physician(s) of Record Identification Sequence"},
	{0x0008, 0x1050}: {vr.PN, "Attending Physician's Name"},
	{0x0008, 0x1052}: {vr.SQ, "Performing Physician Identification Sequence"},
	{0x0008, 0x1060}: {vr.PN, "Name of Physician(s) Reading Study"},
	{0x0008, 0x1062}: {vr.SQ, "Physician(s) ReadingStudy Identification Sequenc"},
	{0x0008, 0x1070}: {vr.PN, "Operator's Name"},
	{0x0008, 0x1072}: {vr.SQ, "Operator Identification Sequence"},
	{0x0008, 0x1080}: {vr.LO, "Admitting Diagnosis Description"},
	{0x0008, 0x1084}: {vr.SQ, "Admitting Diagnosis Code Sequence"},
	{0x0008, 0x1090}: {vr.LO, "Manufacturer's Model Name"},
	{0x0008, 0x1100}: {vr.SQ, "Referenced Results Sequence"},
	{0x0008, 0x1110}: {vr.SQ, "Referenced Study Sequence"},
	{0x0008, 0x1111}: {vr.SQ, "Referenced Study Component Sequence"},
	{0x0008, 0x1115}: {vr.SQ, "Referenced Series Sequence"},
	{0x0008, 0x1120}: {vr.SQ, "Referenced Patient Sequence"},
	{0x0008, 0x1125}: {vr.SQ, "Referenced Visit Sequence"},
	{0x0008, 0x1130}: {vr.SQ, "Referenced Overlay Sequence"},
	{0x0008, 0x1134}: {vr.SQ, "Referenced Stereometric Instance Sequence"},
	{0x0008, 0x113A}: {vr.SQ, "Referenced Waveform Sequence"},
	{0x0008, 0x1140}: {vr.SQ, "Referenced Image Sequence"},
	{0x0008, 0x1145}: {vr.SQ, "Referenced Curve Sequence"},
	{0x0008, 0x114A}: {vr.SQ, "Referenced InstanceSequence"},
	{0x0008, 0x114B}: {vr.SQ, "Referenced Real World Value Mapping InstanceSequence"},
	{0x0008, 0x1150}: {vr.UI, "Referenced SOP Class UID"},
	{0x0008, 0x1155}: {vr.UI, "Referenced SOP Instance UID"},
	{0x0008, 0x115A}: {vr.UI, "SOP Classes Supported"},
	{0x0008, 0x1160}: {vr.IS, "Referenced Frame Number"},
	{0x0008, 0x1161}: {vr.UL, "Simple Frame List"},
	{0x0008, 0x1162}: {vr.UL, "Calculated Frame List"},
	{0x0008, 0x1163}: {vr.FD, "Time Range"},
	{0x0008, 0x1164}: {vr.SQ, "Frame Extraction Sequence"},
	{0x0008, 0x1167}: {vr.UI, "Multi-frame Source SOP Instance UID"},
	{0x0008, 0x1190}: {vr.UR, "Retrieve URL"},
	{0x0008, 0x1195}: {vr.UI, "Transaction UID"},
	{0x0008, 0x1196}: {vr.US, "Warning Reason"},
	{0x0008, 0x1197}: {vr.US, "Failure Reason"},
	{0x0008, 0x1198}: {vr.SQ, "Failed SOP Sequence"},
	{0x0008, 0x1199}: {vr.SQ, "Referenced SOP Sequence"},
	{0x0008, 0x119A}: {vr.SQ, "Other Failures Sequence"},
	{0x0008, 0x1200}: {vr.SQ, "Studies Containing OtherReferenced InstancesSequence"},
	{0x0008, 0x1250}: {vr.SQ, "Related Series Sequence"},
	{0x0008, 0x2110}: {vr.CS, "Lossy Image Compression(Retired)"},
	{0x0008, 0x2111}: {vr.ST, "Derivation Description"},
	{0x0008, 0x2112}: {vr.SQ, "Source Image Sequence"},
	{0x0008, 0x2120}: {vr.SH, "Stage Name"},
	{0x0008, 0x2122}: {vr.IS, "Stage Number"},
	{0x0008, 0x2124}: {vr.IS, "Number of Stages"},
	{0x0008, 0x2127}: {vr.SH, "View Name"},
	{0x0008, 0x2128}: {vr.IS, "View Number"},
	{0x0008, 0x2129}: {vr.IS, "Number of Event Timers"},
	{0x0008, 0x212A}: {vr.IS, "Number of Views in Stage"},
	{0x0008, 0x2130}: {vr.DS, "Event Elapsed Time(s)"},
	{0x0008, 0x2132}: {vr.LO, "Event Timer Name(s)"},
	{0x0008, 0x2133}: {vr.SQ, "Event Timer Sequence"},
	{0x0008, 0x2134}: {vr.FD, "Event Time Offset"},
	{0x0008, 0x2135}: {vr.SQ, "Event Code Sequence"},
	{0x0008, 0x2142}: {vr.IS, "Start Trim"},
	{0x0008, 0x2143}: {vr.IS, "Stop Trim"},
	{0x0008, 0x2144}: {vr.IS, "Recommended Display Frame Rate"},
	{0x0008, 0x2200}: {vr.CS, "Transducer Position"},
	{0x0008, 0x2204}: {vr.CS, "Transducer Orientation"},
	{0x0008, 0x2208}: {vr.CS, "Anatomic Structure"},
	{0x0008, 0x2218}: {vr.SQ, "Anatomic RegionSequence"},
	{0x0008, 0x2220}: {vr.SQ, "Anatomic Region ModifierSequence"},
	{0x0008, 0x2228}: {vr.SQ, "Primary Anatomic Structure Sequence"},
	{0x0008, 0x2229}: {vr.SQ, "Anatomic Structure, Spaceor Region Sequence"},
	{0x0008, 0x2230}: {vr.SQ, "Primary Anatomic Structure ModifierSequence"},
	{0x0008, 0x2240}: {vr.SQ, "Transducer Position Sequence"},
	{0x0008, 0x2242}: {vr.SQ, "Transducer Position Modifier Sequence"},
	{0x0008, 0x2244}: {vr.SQ, "Transducer Orientation Sequence"},
	{0x0008, 0x2246}: {vr.SQ, "Transducer Orientation Modifier Sequence"},
	{0x0008, 0x2251}: {vr.SQ, "Anatomic Structure SpaceOr Region Code Sequence(Trial)"},
	{0x0008, 0x2253}: {vr.SQ, "Anatomic Portal Of Entrance Code Sequence(Trial)"},
	{0x0008, 0x2255}: {vr.SQ, "Anatomic ApproachDirection Code Sequence(Trial)"},
	{0x0008, 0x2256}: {vr.ST, "Anatomic Perspective Description (Trial)"},
	{0x0008, 0x2257}: {vr.SQ, "Anatomic Perspective Code Sequence (Trial)"},
	{0x0008, 0x2258}: {vr.ST, "Anatomic Location Of Examining InstrumentDescription (Trial)"},
	{0x0008, 0x2259}: {vr.SQ, "Anatomic Location Of Examining InstrumentCode Sequence (Trial)"},
	{0x0008, 0x225A}: {vr.SQ, "Anatomic Structure SpaceOr Region Modifier CodeSequence (Trial)"},
	{0x0008, 0x225C}: {vr.SQ, "On Axis Background Anatomic Structure CodeSequence (Trial)"},
	{0x0008, 0x3001}: {vr.SQ, "Alternate Representation Sequence"},
	{0x0008, 0x3010}: {vr.UI, "Irradiation Event UID"},
	{0x0008, 0x3011}: {vr.SQ, "Source Irradiation Event Sequence"},
	{0x0008, 0x2012}: {vr.UI, "Radiopharmaceutical Administration Event UID"},
	{0x0008, 0x4000}: {vr.LT, "Identifying Comments"},
	{0x0008, 0x9007}: {vr.CS, "Frame Type"},
	{0x0008, 0x9092}: {vr.SQ, "Referenced ImageEvidence Sequence"},
	{0x0008, 0x9121}: {vr.SQ, "Referenced Raw DataSequence"},
	{0x0008, 0x9123}: {vr.UI, "Creator-Version UID"},
	{0x0008, 0x9124}: {vr.SQ, "Derivation ImageSequence"},
	{0x0008, 0x9154}: {vr.SQ, "Source Image EvidenceSequence"},
	{0x0008, 0x9205}: {vr.CS, "Pixel Presentation"},
	{0x0008, 0x9206}: {vr.CS, "Volumetric Properties"},
	{0x0008, 0x9207}: {vr.CS, "Volume Based Calculation Technique"},
	{0x0008, 0x9208}: {vr.CS, "Complex Image Component"},
	{0x0008, 0x9209}: {vr.CS, "Acquisition Contrast"},
	{0x0008, 0x9215}: {vr.SQ, "Derivation Code Sequence"},
	{0x0008, 0x9237}: {vr.SQ, "Referenced Presentation State Sequence"},
	{0x0008, 0x9410}: {vr.SQ, "Referenced Other Plane Sequence"},
	{0x0008, 0x9458}: {vr.SQ, "Frame Display Sequence"},
	{0x0008, 0x9459}: {vr.FL, "Recommended DisplayFrame Rate in Float"},
	{0x0008, 0x9460}: {vr.CS, "Skip Frame Range Flag"},
}
