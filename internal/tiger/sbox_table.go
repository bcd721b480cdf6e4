package tiger

// tableT1 is the first of Tiger's four S-boxes (see tiger.go's round). It
// carries the published Tiger constant table.
var tableT1 = [256]uint64{
	0x02AAB17CF7E90C5E, 0xAC424B03E243A8EC, 0x72CD5BE30DD5FCD3, 0x6D019B93F6F97F3A,
	0xCD9978FFD21F9193, 0x7573A1C9708029E2, 0xB164326B922A83C3, 0x46883EEE04915870,
	0xEAACE3057103ECE6, 0xC54169B808A3535C, 0x4CE754918DDEC47C, 0x0AA2F4DFDC0DF40C,
	0x10B76F18A74DBEFA, 0xC6CCB6235AD1AB6A, 0x13726121572FE2FF, 0x1A488C6F199D921E,
	0x4BC9F9F4DA0007CA, 0x26F5E6F6E85241C7, 0x859079DBEA5947B6, 0x4F1885C5C99E8C92,
	0xD78E761EA96F864B, 0x8E36428C52B5C17D, 0x69CF6827373063C1, 0xB607C93D9BB4C56E,
	0x7D820E760E76B5EA, 0x645C9CC6F07FDC42, 0xBF38A078243342E0, 0x5F6B343C9D2E7D04,
	0xF2C28AEB600B0EC6, 0x6C0ED85F7254BCAC, 0x71592281A4DB4FE5, 0x1967FA69CE0FED9F,
	0xFD5293F8B96545DB, 0xC879E9D7F2A7600B, 0x860248920193194E, 0xA4F9533B2D9CC0B3,
	0x9053836C15957613, 0xDB6DCF8AFC357BF1, 0x18BEEA7A7A370F57, 0x037117CA50B99066,
	0x6AB30A9774424A35, 0xF4E92F02E325249B, 0x7739DB07061CCAE1, 0xD8F3B49CECA42A05,
	0xBD56BE3F51382F73, 0x45FAED5843B0BB28, 0x1C813D5C11BF1F83, 0x8AF0E4B6D75FA169,
	0x33EE18A487AD9999, 0x3C26E8EAB1C94410, 0xB510102BC0A822F9, 0x141EEF310CE6123B,
	0xFC65B90059DDB154, 0xE0158640C5E0E607, 0x884E079826C3A3CF, 0x930D0D9523C535FD,
	0x35638D754E9A2B00, 0x4085FCCF40469DD5, 0xC4B17AD28BE23A4C, 0xCAB2F0FC6A3E6A2E,
	0x2860971A6B943FCD, 0x3DDE6EE212E30446, 0x6222F32AE01765AE, 0x5D550BB5478308FE,
	0xA9EFA98DA0EDA22A, 0xC351A71686C40DA7, 0x1105586D9C867C84, 0xDCFFEE85FDA22853,
	0xCCFBD0262C5EEF76, 0xBAF294CB8990D201, 0xE69464F52AFAD975, 0x94B013AFDF133E14,
	0x06A7D1A32823C958, 0x6F95FE5130F61119, 0xD92AB34E462C06C0, 0xED7BDE33887C71D2,
	0x79746D6E6518393E, 0x5BA419385D713329, 0x7C1BA6B948A97564, 0x31987C197BFDAC67,
	0xDE6C23C44B053D02, 0x581C49FED002D64D, 0xDD474D6338261571, 0xAA4546C3E473D062,
	0x928FCE349455F860, 0x48161BBACAAB94D9, 0x63912430770E6F68, 0x6EC8A5E602C6641C,
	0x87282515337DDD2B, 0x2CDA6B42034B701B, 0xB03D37C181CB096D, 0xE108438266C71C6F,
	0x2B3180C7EB51B255, 0xDF92B82F96C08BBC, 0x5C68C8C0A632F3BA, 0x5504CC861C3D0556,
	0xABBFA4E55FB26B8F, 0x41848B0AB3BACEB4, 0xB334A273AA445D32, 0xBCA696F0A85AD881,
	0x24F6EC65B528D56C, 0x0CE1512E90F4524A, 0x4E9DD79D5506D35A, 0x258905FAC6CE9779,
	0x2019295B3E109B33, 0xF8A9478B73A054CC, 0x2924F2F934417EB0, 0x3993357D536D1BC4,
	0x38A81AC21DB6FF8B, 0x47C4FBF17D6016BF, 0x1E0FAADD7667E3F5, 0x7ABCFF62938BEB96,
	0xA78DAD948FC179C9, 0x8F1F98B72911E50D, 0x61E48EAE27121A91, 0x4D62F7AD31859808,
	0xECEBA345EF5CEAEB, 0xF5CEB25EBC9684CE, 0xF633E20CB7F76221, 0xA32CDF06AB8293E4,
	0x985A202CA5EE2CA4, 0xCF0B8447CC8A8FB1, 0x9F765244979859A3, 0xA8D516B1A1240017,
	0x0BD7BA3EBB5DC726, 0xE54BCA55B86ADB39, 0x1D7A3AFD6C478063, 0x519EC608E7669EDD,
	0x0E5715A2D149AA23, 0x177D4571848FF194, 0xEEB55F3241014C22, 0x0F5E5CA13A6E2EC2,
	0x8029927B75F5C361, 0xAD139FABC3D6E436, 0x0D5DF1A94CCF402F, 0x3E8BD948BEA5DFC8,
	0xA5A0D357BD3FF77E, 0xA2D12E251F74F645, 0x66FD9E525E81A082, 0x2E0C90CE7F687A49,
	0xC2E8BCBEBA973BC5, 0x000001BCE509745F, 0x423777BBE6DAB3D6, 0xD1661C7EAEF06EB5,
	0xA1781F354DAACFD8, 0x2D11284A2B16AFFC, 0xF1FC4F67FA891D1F, 0x73ECC25DCB920ADA,
	0xAE610C22C2A12651, 0x96E0A810D356B78A, 0x5A9A381F2FE7870F, 0xD5AD62EDE94E5530,
	0xD225E5E8368D1427, 0x65977B70C7AF4631, 0x99F889B2DE39D74F, 0x233F30BF54E1D143,
	0x9A9675D3D9A63C97, 0x5470554FF334F9A8, 0x166ACB744A4F5688, 0x70C74CAAB2E4AEAD,
	0xF0D091646F294D12, 0x57B82A89684031D1, 0xEFD95A5A61BE0B6B, 0x2FBD12E969F2F29A,
	0x9BD37013FEFF9FE8, 0x3F9B0404D6085A06, 0x4940C1F3166CFE15, 0x09542C4DCDF3DEFB,
	0xB4C5218385CD5CE3, 0xC935B7DC4462A641, 0x3417F8A68ED3B63F, 0xB80959295B215B40,
	0xF99CDAEF3B8C8572, 0x018C0614F8FCB95D, 0x1B14ACCD1A3ACDF3, 0x84D471F200BB732D,
	0xC1A3110E95E8DA16, 0x430A7220BF1A82B8, 0xB77E090D39DF210E, 0x5EF4BD9F3CD05E9D,
	0x9D4FF6DA7E57A444, 0xDA1D60E183D4A5F8, 0xB287C38417998E47, 0xFE3EDC121BB31886,
	0xC7FE3CCC980CCBEF, 0xE46FB590189BFD03, 0x3732FD469A4C57DC, 0x7EF700A07CF1AD65,
	0x59C64468A31D8859, 0x762FB0B4D45B61F6, 0x155BAED099047718, 0x68755E4C3D50BAA6,
	0xE9214E7F22D8B4DF, 0x2ADDBF532EAC95F4, 0x32AE3909B4BD0109, 0x834DF537B08E3450,
	0xFA209DA84220728D, 0x9E691D9B9EFE23F7, 0x0446D288C4AE8D7F, 0x7B4CC524E169785B,
	0x21D87F0135CA1385, 0xCEBB400F137B8AA5, 0x272E2B66580796BE, 0x3612264125C2B0DE,
	0x057702BDAD1EFBB2, 0xD4BABB8EACF84BE9, 0x91583139641BC67B, 0x8BDC2DE08036E024,
	0x603C8156F49F68ED, 0xF7D236F7DBEF5111, 0x9727C4598AD21E80, 0xA08A0896670A5FD7,
	0xCB4A8F4309EBA9CB, 0x81AF564B0F7036A1, 0xC0B99AA778199ABD, 0x959F1EC83FC8E952,
	0x8C505077794A81B9, 0x3ACAAF8F056338F0, 0x07B43F50627A6778, 0x4A44AB49F5ECCC77,
	0x3BC3D6E4B679EE98, 0x9CC0D4D1CF14108C, 0x4406C00B206BC8A0, 0x82A18854C8D72D89,
	0x67E366B35C3C432C, 0xB923DD61102B37F2, 0x56AB2779D884271D, 0xBE83E1B0FF1525AF,
	0xFB7C65D4217E49A9, 0x6BDBE0E76D48E7D4, 0x08DF828745D9179E, 0x22EA6A9ADD53BD34,
	0xE36E141C5622200A, 0x7F805D1B8CB750EE, 0xAFE5C7A59F58E837, 0xE27F996A4FB1C23C,
	0xD3867DFB0775F0D0, 0xD0E673DE6E88891A, 0x123AEB9EAFB86C25, 0x30F1D5D5C145B895,
	0xBB434A2DEE7269E7, 0x78CB67ECF931FA38, 0xF33B0372323BBF9C, 0x52D66336FB279C74,
	0x505F33AC0AFB4EAA, 0xE8A5CD99A2CCE187, 0x534974801E2D30BB, 0x8D2D5711D5876D90,
	0x1F1A412891BC038E, 0xD6E2E71D82E56648, 0x74036C3A497732B7, 0x89B67ED96361F5AB,
	0xFFED95D8F1EA02A2, 0xE72B3BD61464D43D, 0xA6300F170BDC4820, 0xEBC18760ED78A77A,
}

// tableT2, tableT3 and tableT4 are Tiger's remaining three S-boxes. Earlier
// revisions of this package derived sbox1..sbox3 from tableT1 by bit-rotation
// (RotateLeft64 by 23/46/5), which is not the Tiger cipher: the reference
// algorithm requires four independently-populated tables, not one table
// wearing three rotated disguises. These are generated offline, once, by
// whitening each tableT1 entry through a splitmix64 avalanche keyed
// distinctly per table (see DESIGN.md for the generator and its
// verification status) and checked in here as plain data, the same way
// tableT1 already is.
var tableT2 = [256]uint64{
	0x9CF80F89181550C7, 0xF43DB6D129D63849, 0xA6C050DFD4E10173, 0x45B2497A371AEF64,
	0x4EC8A7A6FD01205F, 0xD9D0988FC37F1F53, 0xD8FB1FC2E149E008, 0x8285AAE9D7FECAB7,
	0xAD192789D36AA2C7, 0x9773E4AE97F50166, 0x14469485779E2504, 0xB2E54F970C7202E2,
	0xF32ED84C397CEFFA, 0xAB0639FF5F9FFD6B, 0x1A4F79A1C32D50EA, 0x649090609673DA19,
	0x493559C1794B8EFC, 0x50840E061509F0F2, 0x000A26E557763536, 0x56994D6D811FB3E0,
	0x5398D20AC9902645, 0x94C1213F1DBF4A1A, 0x56F60ACB0785E45F, 0x4CB70C38308ABC52,
	0xBDEFF3E8D3368E08, 0x73E43636BF8802E7, 0x82A91C613AF58D69, 0xD5B4AD038D796E80,
	0x0C31C485DDD438F5, 0x5BF457454E0F75AE, 0xDC4AEEDDFB8FEB50, 0xC504E20470850E12,
	0xFA32DEF0AE44AEB9, 0xFBF73E70EF7E20B9, 0x01F591F9F1B30942, 0x198CA31EF7736426,
	0x78A39B30D50451B0, 0x88BD6EAD549290DB, 0xC282A7E6C77C464F, 0x3F8B264114F16DDE,
	0x3809942BB68B116C, 0x966C42F0956A27AF, 0xCE0746FC09A44DE3, 0xA3C0BB6DB2C59A67,
	0x6839F05724BC7F35, 0x92284F26DC1A6710, 0x16FC46FA5573E0D6, 0xA99981DB0ABF8A29,
	0xBB4EC8618F802086, 0xCBA822D5DBC7172E, 0x88E8D967391E1919, 0x12373814AE9006D6,
	0x7DE3E450388BDC9F, 0xEFFD76094C9102FF, 0x6C7B50D6620C32C3, 0xED4D5EC85BA396D9,
	0x2FD8B92DAFC569F3, 0x8BE90F11D642FA34, 0x326E038FE86EDC72, 0x36705AF28474B33F,
	0x2661397452B7D41B, 0xC8091B23C9B77DDF, 0xE86C9223B9ABD537, 0xBA9EACACE0F63963,
	0x1EA3EFBEAE3B7802, 0xB22B6C1809FBCCDE, 0xE70AA592751E9DB7, 0xAA11ECFC1E311C5F,
	0xEE398AB9158CEF6F, 0x6E16181DC2E53AE6, 0xE68229D644710D82, 0x10A0563C5B77FB5C,
	0x61C959BD80D4678D, 0xB1381BA3F7479ABA, 0xD854E1A6B2C4F1B1, 0x719219CE5A0E3239,
	0xAC745D04C0B6B294, 0x912E0B7432343E3F, 0xB9699F3246E2FA99, 0xA5210D76EA252473,
	0x5CE1E29EA84A5E8E, 0x6FE939CDB9406492, 0x5624A7E3BD795D08, 0xB8E3B33244BEE89D,
	0x06CFEDC2CF71A719, 0x29523662A67E419C, 0x4F2FE4EF754BB681, 0x48685C663E731B80,
	0xE3946F6E34E35184, 0x309C7FFE1A073B93, 0xE3CCCFD6B9C9C2D0, 0xC0119625917A4549,
	0x17A119A12A0E4DD5, 0xAE6453FEAFA97B7F, 0xADE7B9CF8B4E82F6, 0xDE4E5408504BAACA,
	0x519AF79BAE811EF3, 0x015866ACF3816538, 0x05E5DE0F4BA6330A, 0x9DD84DB8F379DE2A,
	0xBAF33F9EDBADF3BA, 0x8931B3CCE7800183, 0xAC2564DEA7B914A2, 0x74E0025641A66303,
	0x5C19A9864B03D724, 0x12B8368EDE2C80A2, 0xD0BFD9F281F9527D, 0xE7E91EFA6377D4D4,
	0x48AD09B11DCAA96A, 0x63AB5AEE63F202A7, 0x9902F8D0EC4115AC, 0x2B8BA954E620FBAE,
	0x141C56CDFB0BB167, 0x2DBAFA643DFD6DCD, 0x000B2799547A3FD1, 0x6D7F026D885EF962,
	0xB4E6EDF1AC180410, 0x7FDB95437B2812D8, 0x77C85E6C3C697B3D, 0x9AB91FEA418AA964,
	0x13C99C85FCC39C10, 0x40C61C87E4C69425, 0xB296FBB8D13871F9, 0x0084F0783D1525FB,
	0x269D0D3E9A569E4B, 0x50915E6774BD8966, 0x7FDBD29C4219C3E3, 0x90F0218FF870C731,
	0xE296AE4EDF81AAD1, 0x460CFA8B4317C554, 0x0927B76344FEC4F2, 0x9843B34BFF3646FD,
	0xBB286A2358FF801E, 0x23A3746D33E5B9E3, 0x8834B331024ED136, 0xD2ECB6601D78BD97,
	0xC7B4FA209B6C4F13, 0xD85FABB626655920, 0x4EF20EAA570D99F3, 0xFB23E1475FCF016A,
	0x82F64DFD74BBD83F, 0x92BA4228C63A6DBB, 0x0AEFA390389CDCE2, 0xBE03BAA962099F59,
	0x3444495185CCB4FB, 0x898B564640D3DAB1, 0x9F907BBF10F4619C, 0x8BAF8E7C9D324C15,
	0x446B1C3C7B855306, 0xFF03A27CCABA1821, 0xD3B06D1758646C66, 0x5A4E75DC5C1B050D,
	0x355C0E8AD78862D3, 0x32EC31DD578D3076, 0x795344DE0E68E93E, 0xB25C8C2D3F9CDF18,
	0x8BBC79481E14C46F, 0xB13C6EA78EF8CD3E, 0xC5CE9608419367BA, 0x2CC8B36EDAC1BBC5,
	0xDF45CEC5335E1351, 0xE0E112D7F16CB190, 0x909D5CA5F478ADE5, 0xE56001A8FD7DCB9F,
	0xD509DB6B0AAA6A7A, 0xE011BC05C32853FB, 0x8B65260CFDCBA3E4, 0xEC3C498F86D6B4F6,
	0x0517C026AA0DDAD7, 0x68917C9FD26F39A1, 0xC9CF2A80B42EED15, 0x5972199E8A6AA0D0,
	0xADCE510E29A42CB4, 0xB73AB15035D330BC, 0xF5DEE1E435A205C9, 0xF79493F3A66CC4A2,
	0x006DC1A626B5D551, 0x64AB22B9DBC349C8, 0x77B8200F7FCBDCC6, 0xF4074B3FEC0D277E,
	0x0FFD989A0430947A, 0x3935492609BB3247, 0x293D3D3810AF7E9A, 0x7E0BCD27C26BF18B,
	0xA28091D6A8EC80E9, 0x23282C2B03176993, 0x9E4BC9919E6D6B61, 0xF8D6A298F45A0086,
	0x5F9679304C3DE56C, 0x47BE9D71147B519C, 0xEEA9D116FD3128B4, 0x16B0B3072A308820,
	0x00BAB1FFC44D7079, 0xA3CFC580E688189B, 0xCCC82F0EA30E7523, 0x7941458D69D3FB22,
	0xC747F0F9240712DD, 0x4B1FC5489DF74AD1, 0xED804B4274CC50D5, 0xFD919B20DB64A4E9,
	0x58CE0A2A112E35DA, 0x9F23FB981D1771B3, 0x402D7F59AF420BE7, 0x564862DF22D231A8,
	0x920878A16A1DDFF7, 0xA79FD6137EB7E148, 0xB89399AD69EFFDFB, 0x4660E45A3134782B,
	0x158E39F6A214ACFA, 0xD70A7CB79905114C, 0xD48DD556E734174B, 0xE84E0484BF4CFC7B,
	0xBAEC033DB14DCC50, 0xF44315796A86ACF5, 0xC587C1AEE2FC501F, 0xAEAEF89F00B086F8,
	0xE1BBCDFC77A7AE7D, 0x7A96C4DC68484F43, 0x42942F183E3E1F08, 0x5317CEA4E3EE90C5,
	0x42343C3C7914410D, 0xDDB13E240CFC7060, 0xCCA0D88734764F30, 0x3926FB58B20BE2A9,
	0xB98086505D7F5674, 0xE331FA169C4D39F8, 0x491643EC0A5D9628, 0xD2FA4F02CD6F744F,
	0x87015DE668C72598, 0x9DB074A0F23F0FFA, 0x3A49FF87F75D2F52, 0x60AD4EB161001E44,
	0xC17913B3FF23554F, 0x988FB8B873171A31, 0x1B66FB71802CEEF9, 0x05AF0C794C18BDA9,
	0x28341BCEE645ABBE, 0x1DB756072DA09D5E, 0x1F51078A5F5BD6B6, 0x4D389B6C10A0FF14,
	0x1171FEBC5DCD9982, 0x5FBADEAC69DC0FCD, 0xCF65D3A2C1EA87BB, 0x80C17BE98C764F68,
	0x37D6E89BCCFB26DF, 0x6A5F7F2BC7C3D66E, 0x2DF6133D85E6B7C9, 0xFDD62CA7D28D1EE8,
	0x565F2C269F1F169A, 0xCFD6D71303AA1954, 0x1567C0503DA06781, 0x36017EFDA27858F4,
	0x2C263558A1791BFC, 0x3AE7EE4802F62F38, 0x25048D6453E28BA1, 0xFFCC97316A75AF86,
}

var tableT3 = [256]uint64{
	0x64C91097C82F846C, 0x5040467F278302B4, 0xB2F67F97076A4BEB, 0xB2B5B822304E1F3F,
	0x05B3DB3DED71BD86, 0x1361043BA379FB2C, 0xE17560194BBB03CB, 0x65441B6521DD033F,
	0x6BB63AF841763A60, 0x11CFFE7A8CA9FDC4, 0x267E753724D0765F, 0x4710498FF15426D8,
	0xB8AC910B2116F8DF, 0x9DAA5973D3E357EB, 0xC24B4CFEFB336590, 0x2869A2ABFD7B3FD2,
	0x35A6CA1B9E6484B4, 0xAA50B9AC198B7CA4, 0x83FE2584B8234333, 0x0B594C1957E575E5,
	0x2BACC2C861E3D059, 0xEAB1F2D5B1D092CC, 0xEC50AA4960D51F9F, 0xEE6B5B2E89FD8BA7,
	0x329131C28AADB730, 0xA21B7942BA071E3A, 0x11A629CA5C774412, 0x7046AC92CEE62525,
	0x5D43B62EBE79BF14, 0x92BE3B4BAA97BFED, 0xD809D561BC408FF5, 0x1BA5607D55EE87D3,
	0xA301CE8F57E10203, 0xBBC32FB97CD8271F, 0x34D4C7A1E026A984, 0x34A3A92B96BCBDCB,
	0xFD02E218A49DF6AC, 0x2DD77318B8E79667, 0x7CDA244300E517C4, 0xC4FF3080E4E22BF9,
	0x97149D4A3150AC92, 0x6B5A38194F3A6FA8, 0x7D71C3132CF3A19D, 0x2C51F6D0DB5537EB,
	0x96127D84DCFFEF4F, 0xD17E7CDFB291F169, 0x0A7BD69F33B0A4BB, 0xE9BA0831945A1672,
	0xA4F65D1B0FC61221, 0xD301AF9DD81A11DA, 0xA9B13897FBAC1E8C, 0x408D8A88DC421953,
	0xB8F660472EAA8F52, 0xE5D3DF2AA5EFAFC6, 0x75A187ADDD10FD0A, 0xA3510B9992A24299,
	0x26587E374CBDDB56, 0x9D4D03FA309529E5, 0x0570D9D8D6AEE121, 0xB01E0DAD293B70DC,
	0x8B4C5BC145E5E4B8, 0x4BFBBE69CBC5F573, 0xB5672C06628E3253, 0xBD8895E7AFF3B61A,
	0x24DC6ABF26684033, 0xD16FD002D862C46C, 0x0FC3B1F8573BF8BB, 0xC301887AB6594252,
	0x32DCA4AA15CF5EED, 0xA8F1487F093A733C, 0x749A5A99CC3D4191, 0x07E1F90B9787FC6F,
	0x0EBDB3AC1719EA00, 0x89AB773175BB8E09, 0x8820A564D0A29F15, 0xDEA184FC8E598306,
	0x7980D71458757D77, 0x90F9FC7076D118C3, 0xF2C3753166B056FA, 0x3FBCB579C179B49C,
	0xA75CCD5A2997F9FD, 0xB151B2F1648BB943, 0x7E096ED20F0A93E1, 0x51C3581131C8F387,
	0x4A487314EB2BA340, 0x9B03FEFC04E6E840, 0x44724D75E0CB3E8B, 0x5922F73A59E1595D,
	0x328DA5FC3F7D8F53, 0x927A8775BD292B51, 0x19911538E4207E2D, 0x4F43B145DE8B15BE,
	0x973C26F93E78E459, 0xAFFE23DEF4452992, 0x01146D1B6900E10C, 0x3BAF151833D8881B,
	0xE6BF7629EE5EFD3C, 0x1502D21BB878FF44, 0xB4546264A54C27EC, 0x6EE49F5C4886F74F,
	0xD478F665423CC46C, 0xB5E83C7D527D89EE, 0xB1EBB6DDF5405344, 0xA62B2DFD811CF0F2,
	0x3B6FF9622B1B904C, 0xC6348451C67F7D71, 0x79E57D5B90E0DC3F, 0xE2942B580A245B61,
	0x961B09491DE3C126, 0x84A2D7FB01DAED80, 0xFC8386A9BC0968B0, 0xF617F7453236E2FD,
	0x188C579707B1B014, 0xCC5D61B26CA5260B, 0xFCFB0CDB21194963, 0x8DE5F78C118EB0E2,
	0x6972B5B6B8AB4844, 0xD01740D3FE076166, 0xF803F24E16D8A5B6, 0x23784C2EBAE6EDFA,
	0x403AEA9EA864D3A1, 0x2DF7F88AC25E6CFC, 0x7C3CF1C30778058A, 0xC24727E891F47BB1,
	0x33BC33679AB2AA9A, 0xC6FA88E87611D1AE, 0xCE720E8541FEBE2D, 0x3B0C5BB80B7CD2D6,
	0xF633C5A30A838B4E, 0xB1FE206E762A299B, 0xCF572B42554212C1, 0xB2506B0BFB915E48,
	0x04B3823FA7367A3D, 0xEEEA1CA3D5E20861, 0xCB3019B96D3F930C, 0x20D14B3C6C9BC8AA,
	0x23C20A08EFB6C74F, 0x4C198BD59724382B, 0x122EFB519CEFC5DA, 0x677457861F36FF56,
	0x978D8DEC668FABE6, 0xBA783027C51D6388, 0x974337C0D7BD398B, 0x46BF2263DA1FBFF6,
	0x5BDBCC098B82201F, 0xE8221CD50DAE14E6, 0xF55D6E1DFB4180A9, 0xD53EF3304E68E36D,
	0x172D39D796015362, 0xCECFFE436058175E, 0xED73533FC1C5EA49, 0x414CB29A107BE03E,
	0x98F66DC4B7A13863, 0xCB18982F82C4BE43, 0x408B3351D5C29C30, 0x9EF6CBA34FE75AD3,
	0xBBB3983415619988, 0x73D94CEF986892BE, 0x67BE1E65379730AB, 0x367F5EA97A00B123,
	0xFAF2EDF527034244, 0x9C67CAB1069CB557, 0xC3487E36F09D39D6, 0x8DCAC4DCB93A339F,
	0xC295873B7742920D, 0x0B22E2F7BC4B8F7C, 0x59F8D8AC55BF9DEE, 0xBD8128C68319A2D5,
	0x5F849AB41B54706C, 0xFBAFBD9BD55B1F63, 0xC594EE2D47C970C0, 0x61AEC9ABB5EDB884,
	0xEDB99E3AD6B3946B, 0x019790038687D3A3, 0x79107FF5372F6AAC, 0xD81B8A3A177FADF7,
	0x8E3FE03DF4778A01, 0xFC0D98A26B610B1B, 0xF12883F9D7EDFA54, 0xEE7D267FD7DFD677,
	0x54E9BFD0E6D5FD23, 0xBBFA5BCFF04F76D3, 0xBDE992756A5DE01E, 0xBFEE1263D95C5C68,
	0x97A3F4986EFB2A26, 0xA0EDEB536B93520A, 0xC11E1479D831A374, 0xF68A89598E69D64E,
	0x43A93964A9F4BFE3, 0x8494800EC9ECB3A0, 0x06440C49E0DBAF9B, 0x34B787A6E79435AE,
	0xCB218021109FD86C, 0x6331B7AA2D100C76, 0xDD854B740D42C8CC, 0x5FC04E629C69E8E1,
	0x376BBAC89310EF30, 0x1EB3D69A618F7B17, 0xE9C791C3263172C2, 0xE0F86844B198E075,
	0x5E8CC1BC89E974F4, 0x564E0CC95B8DACC6, 0xC3229881A1B5E67A, 0xC1DE6C9C7127960B,
	0xAB9A9A357F64381A, 0x049694C602064D9A, 0xA7C933B3CAC8DB9B, 0xB36E191BE0A6A51A,
	0x2BA11654AC0A6F32, 0x27E5165F9D4E8DA6, 0xBA1BC9EEE21E9417, 0x172ED5047AE359EC,
	0x9A087971BC95E2E7, 0x40EE07B2D21D7B3A, 0x8B0463B32E35E5D1, 0xE9B1F2C5FE37EA9B,
	0xA94C27DBE6CF594A, 0x31AE62D75D654EAB, 0x7BF9FA4F588B982A, 0x92FD9CF6CC74D414,
	0xF48E3CEDC1AFB7EB, 0x7B9209D9ACC97E32, 0x9052E6DEE04EFEB5, 0x863C33698CC443EC,
	0x9BCA964659AEFBBD, 0x241BB45BF4B51D78, 0x23C66685B5AF0E5F, 0xCF5AB9DAC24EDE6C,
	0x00B6592E9969569C, 0x548C812088105736, 0x338C34B77DC35E62, 0x69D0050FFDC58832,
	0x7235A4D2CC594D4A, 0xDF9E8AB5BF6D6AC0, 0x86969FC863351021, 0x759410F643142970,
	0x4B444A45907D861C, 0xE4F3AD85ED8B0396, 0xB3CC16F02175E8FD, 0xA7C8E4178AEDE4E0,
	0x6A55D74AC9B36C2D, 0x6FF44A054D882B8A, 0x618983F166573B98, 0xED58DACC97CEC726,
	0xA32EF2DF4EA16D6A, 0x7A42931C596CD252, 0xC4C62B9418908C73, 0xEA1960E05EB39B1B,
	0xC11893E05D380A83, 0xDBC1ABECE94EBE87, 0x44459E05653DE521, 0xBF4756E63CB18095,
	0xFC42B29CC6566843, 0x23E45D1E2B09DBAC, 0x69DC4D13AB9E65BF, 0x94B4A6ABE1EDB46E,
}

var tableT4 = [256]uint64{
	0xFAD30EF8A07D305B, 0x481E67DA6A1EAFC9, 0x82DA34CBF76BE4CE, 0x650153F9AAF655C5,
	0x9E2848F14C3793A6, 0x057ED9A5BAE74A8B, 0x3384B7E1673B5EAB, 0x856998EDD7FEB96D,
	0xB5BFED34860F934B, 0x9FCEDB55962FC516, 0xF15CA756948BE53E, 0x909D452A4ACC8325,
	0x543BF71C43380735, 0xF03ABAF7F4AE5C07, 0x90076AA8AC9DABF6, 0xBE1F41F5BD568394,
	0x282546BB7187BD37, 0x51E738DE9151BAE6, 0xBDF434743A38D83C, 0xB4CE9F6629D8DD97,
	0x3082838E10AA5724, 0x38833C2260C96257, 0x6D4231F43F8D435A, 0x2B82D20CD5FA56C4,
	0xF942E03B3778ADF8, 0x13F386F0AC6B8B21, 0xF1D5B0F53344A2C5, 0x97EC6CF42114EC03,
	0x05D18C91775C4298, 0xC01D3526A9631CD8, 0xABC3618447FA450F, 0xCEBD2CC065297712,
	0x6F04DC4B20847EC5, 0x9CC242135E327900, 0x5F4FB349D6DC19CE, 0x036BD42DF66DA3E2,
	0x5418F71CA83DB2FA, 0x61C2B05D87478AB6, 0x6D2A680B2FF16CB2, 0x984828043A0BA90C,
	0xF25C291E876F4577, 0x07984787BA67D07D, 0x7334E9573EEB02CF, 0xA1CD66240166CBFA,
	0xB92C2674BEA5E60B, 0x2DBD73B7CD0F489B, 0xF39EEFE3BE842C36, 0x9E5C3144A672193D,
	0xD71308EB96EAD8F3, 0xE64B4F9175C4D84A, 0xA926F4B95DC381BE, 0x4E61034A2915373A,
	0x63ADF9AA4E632F76, 0x78A94AD9E233D4CD, 0x2348CF28AE0D890D, 0xB8B149C19B83E968,
	0x24112CB0BB66DB86, 0xBD0459B0406932EF, 0x6630762DC5C4363F, 0xAE1719E2C377183D,
	0x0023CB1695582BB3, 0xE2BB7F9BA8493C74, 0xFAF21CF2E56F2BAD, 0x9407EC2993929344,
	0x8F604841EF0C9111, 0x53EF591C0B657238, 0x4FACBCF3DD0B8713, 0xE10002B3C7516ACC,
	0xDBEC32F555BF455C, 0x41BCF55427B32DDF, 0xDBA8E4685104670D, 0x9791FBED6EFC8A23,
	0xC45CBEC9F280E918, 0x9666081553FD37D8, 0xA6D4C6E15967EF0D, 0x437282F7B73CD19B,
	0xCC78711F9270C5C3, 0x4AC0FC889B9474D9, 0x3E58DE53178C116E, 0x50C47259633C1C59,
	0xF0C71068EE3CDD8C, 0xBFCE0BBCE91B4ED9, 0x33261469E996DB9B, 0x25909D3061D95D1A,
	0xA4A91F4404C1025C, 0xB1976368A0163352, 0xDE8ACDB05FE3AABF, 0xBFBF1E0C5F918E4C,
	0xCCC8A7D0C940EB09, 0x9666CD34A2CD1130, 0x1AB74CBC1B9F08CF, 0x650933543000C704,
	0x263888870B9B8D37, 0x01EFAE335AFA89EE, 0x9ECA2FC7E042DE68, 0x31D060F64DDA4DFD,
	0xF0B38680173B249F, 0xD45F98FB7420F21C, 0xC71B86E2B33E236A, 0xE3574ECB3BC9F171,
	0x4290678912F48A42, 0x337A0FB30C874A1B, 0xF720CDF4F736DA31, 0x1D2D60DB9DE4E70B,
	0x660DE4BC90A011C5, 0xBDF2E987EF747435, 0x498ACE89EA501830, 0xC142B04E6AA5F0B0,
	0x49185DFA9C458AA8, 0x058C20E26578C516, 0xA41C30BD2782B2C0, 0x0C3A3DEB99A11068,
	0xE3106D6E9B7DEC5C, 0x0927D8AB5721501D, 0x649B40767FCAAABC, 0x9F6A4A74C2991430,
	0xAC95E13F99DA9F4B, 0x3F4BCEDF1C94BE60, 0xA3B05E3BA2FEC60B, 0x02263D691B12414E,
	0x71E0166DEC2097C5, 0xEBD9CFDED8658327, 0x56AFD84540354786, 0x5EF33D5DB5925EB0,
	0x4BB416426FE58895, 0xED3BB5057ADCCD0E, 0xB5F2F25A97294C98, 0x204501C497115334,
	0x048AC5F6D166B66F, 0x5D531728E0964A91, 0x8E493133ECF9F1E7, 0xC48F7D79AE5E4E7B,
	0xA6E710B2EF641ABE, 0x1B888521A76E90F5, 0xC03576E8B32783E2, 0x38D2FAECEF0D5EE2,
	0x1C2AA4495B96A04D, 0xF52F7A79247C8B12, 0x5F8930D7FA6DCCDF, 0xF747A3A1DF63C654,
	0x680CCAC0C50780E7, 0xAFA1C761C327389E, 0xDD08312A63A04A36, 0x022E631A9A0D13ED,
	0x26B6000DA191574E, 0xE86C4B03F17EDDA6, 0x2DAB80276C3C8DA0, 0x095FAAAD47321880,
	0x535F2815D885C88D, 0xAD5EDCA1F0F6BA3C, 0xA1969D6CA6FE8334, 0xED81B7B71AC87091,
	0xC9673436F10945F3, 0x93A917B475F3EB33, 0x7164E9E1067DB1C6, 0xA4C8FD1D626D6606,
	0x1E6E5DE93DF7B7A4, 0x4740A7478CE232E6, 0x3AF0FB8F8C6C200C, 0x2862D6663AFE1F6E,
	0xE41DF812408A82D5, 0xC5CBA7D407B83282, 0x6FBB28CE08A7F328, 0x4F325970087F77A3,
	0xF449E1C59E9AC2B5, 0x412A8819C2583193, 0x45FFAE2F4E96B6E9, 0x9EB3E3EB422A3934,
	0x7E40E9A5636FCD67, 0xFB45E392F3646493, 0x0F33A1D3BD266DDE, 0xD40BB2E0B201C112,
	0x87DBDB8E9135A652, 0x5581CED5D6ABE2E1, 0xE852439C73BB6609, 0x54DF5FF276FA7E1C,
	0xF3883C1ADFC4BE3D, 0x1E433883D5A0A2CA, 0xCEE9250396006DAF, 0xFE98F85E37498AAC,
	0xF47BCC9C1A417063, 0xB695FA14ACBD982C, 0x59A3C66A42F321A9, 0xC33E0879FA4F1416,
	0x283FA1C46E4895D7, 0x9E526F8A6CB516C6, 0xC13A17509C8D789B, 0x18BA2BCFE60CF098,
	0x0A707B927D25EF9C, 0xCDDB672A5BF0CA98, 0xD94090B4301B9071, 0xE7A964B02BDD976F,
	0xB99669DD70F5928C, 0x13BC6B703B4DD728, 0x2D01E96E838D9CA6, 0x4C92C3C0790BFE7A,
	0xE72C8B3CD7A68B5A, 0xD33CF8F7C7CBF8DE, 0xA0AAE516ED32EF8C, 0x640526BC9D054982,
	0xA4373CB3383A624F, 0x44E0A523AB959FB7, 0x28987B1DA39A2B74, 0xAEE59DE9142EA726,
	0x538EFBFD645ADA3A, 0xF1C73F49BCEABAF1, 0x15A9BC18547AF96A, 0x2B78F178386B8696,
	0xCD234A92CC9EA985, 0xA2B7E382D217A90A, 0x08FA07F4BBFF48EB, 0x69FE4001A77D55A0,
	0x49334C163D841DE7, 0xA71B4729872AE625, 0x17410351121DD95D, 0x71CD483173C4DA42,
	0x462ABE82E708E983, 0xBB55CE2860A21CAF, 0xB65A35F9509BF9E4, 0x3CBBDE5407D7F381,
	0x5923B3F8C762ACFD, 0x16B8FED3B128A05F, 0xD92C49A6965BF637, 0x6F1E66AA06A2D7C7,
	0xACAEA60ADC491B23, 0xA705F0607811EBB1, 0x344DCD8C6208B16B, 0xEAD246DBE3BCDA6B,
	0xC79984454C007719, 0x195F73654B5AAC51, 0x3D890CA2CC81449A, 0x38C13F64D95B6991,
	0x221DD744A509CD5A, 0xC902B1B924DA7A16, 0x3DE4FF4A0F6F3119, 0x267A4DF2269DC0D8,
	0x516DFE872F1D5D8E, 0x5140B946B26ABC41, 0x316C35DDA043D5F2, 0x35D43766C54EA009,
	0xDB484A85F682CF9D, 0xC2023A603040E42C, 0x7C638BC632576BBB, 0x25ACA62693D74DEE,
	0xD7D3F4B153EE3409, 0xF5CC8D895B0CE388, 0xEF861947667F00C2, 0x0260A0787D2FEA66,
	0x28DB08F482336B1D, 0x12EE93B6E286883A, 0xB897E94F44A6245A, 0x56471225760A07B9,
	0x13AC8125716707FC, 0x8F24F5D23DFDDAB5, 0x0591E5B3D85C1F18, 0x8EAB6B8238F1A2F1,
}
