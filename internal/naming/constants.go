package naming

// Name pools for generated boss names. Order matters: the generated
// name is an index into these slices, so reordering or removing entries
// changes names players have already seen. Append only.

var maleNames = []string{
	"Asgrim", "Bodvar", "Dagfinn", "Eirik", "Falgeir",
	"Gunnar", "Halvard", "Ingolf", "Jorund", "Kolbein",
	"Leifric", "Mordain", "Njal", "Oddvar", "Ragnvald",
	"Sigurd", "Thorvald", "Ulfar", "Vebrand", "Yngvar",
	"Arnfast", "Brandulf", "Eyvind", "Finnbjorn", "Geirmund",
	"Hakon", "Isolf", "Jokul", "Kettil", "Lodin",
	"Magnar", "Orvar", "Raudi", "Skarde", "Torgeir",
	"Uthgar", "Vigfus", "Wulfgar", "Aslak", "Bergthor",
	"Dufthak", "Egill", "Grimkel", "Hroald", "Steinarr",
}

var femaleNames = []string{
	"Astrid", "Bergdis", "Dalla", "Eydis", "Freydis",
	"Gunnhild", "Hallveig", "Ingirun", "Jorunn", "Katla",
	"Liv", "Mjoll", "Oddny", "Ragnfrid", "Signy",
	"Thordis", "Ulfhild", "Valdis", "Yrsa", "Arnora",
	"Bothild", "Drifa", "Eirny", "Gudrun", "Hervor",
	"Idunn", "Kolfinna", "Saldis", "Tova", "Ylva",
}
