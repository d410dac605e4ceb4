package theme

// bundle returns the source-of-truth content for k. The switch has one case
// per declared key; TestEveryKeyHasBundle fails if a key is added without
// content here.
func bundle(k Key) Theme {
	switch k {
	case KeyDharmic:
		return Theme{
			Key:         KeyDharmic,
			Label:       "Hinduism / Sikhism / Buddhism / Jainism",
			ShortLabel:  "Dharmic Faiths",
			Subtitle:    "Vivah · Anand Karaj · Dharmic Rites",
			HeroHeading: "Honouring Sacred Traditions",
			HeroSubtext: "Legally register your Vivah, Anand Karaj or Dharmic union with dignity, care, and complete legal compliance, all from the comfort of your home.",
			Description: "For millions of families across India, marriage is not merely a legal contract. It is a sacred covenant witnessed by fire, scripture, and community. Whether your ceremony follows the Saptapadi of Hindu Vivah, the four Lavans of Anand Karaj, the serene simplicity of a Buddhist union, or the vows of Jain matrimony, each tradition carries centuries of spiritual meaning. Our platform exists to honour these traditions while ensuring every couple receives the full legal protection their union deserves.",
			BannerBg:    "linear-gradient(135deg, #0f4c4c 0%, #0d6b6b 45%, #0a5555 100%)",
			BannerImage: "/static/banners/dharmic.svg",
			Colors:      Colors{Accent: "#0d9488", Light: "#f0fdfa", Dark: "#0f4c4c", Border: "#99f6e4"},
			LegalActs: []string{
				"Hindu Marriage Act, 1955",
				"Special Marriage Act, 1954",
				"Anand Marriage Act, 1909",
			},
			HowWeHelp: []HelpItem{
				{"Document Guidance", "We walk you through every document required under the Hindu Marriage Act and Anand Marriage Act (Aadhaar, birth proof, witness affidavits, and ceremony photographs) so nothing is missed."},
				{"Multi-Faith Coverage", "Whether Hindu, Sikh, Buddhist, or Jain, our platform adapts to the specific legal requirements of each tradition under a unified workflow."},
				{"Expert Verification", "Our legal team reviews every submission before it reaches the registrar, catching errors that commonly lead to rejection."},
				{"Ceremony-Specific Proofs", "We help you compile the right ceremony-specific proofs, such as Varmala photos, Phera records and Laav certificates, that satisfy government requirements."},
			},
		}
	case KeyIslam:
		return Theme{
			Key:         KeyIslam,
			Label:       "Islam",
			ShortLabel:  "Islam",
			Subtitle:    "Nikah Registration",
			HeroHeading: "Protecting Your Nikah, Legally",
			HeroSubtext: "Ensure your Nikah is recognised under Indian law with a seamless, guided registration process, preserving both religious sanctity and legal security.",
			Description: "A Nikah conducted in the presence of witnesses and officiated by a Qazi or Maulvi holds profound religious significance. However, without civil registration, couples may face serious legal challenges, from inheritance disputes to visa complications. Our platform bridges the gap between Islamic matrimonial tradition and Indian civil law, ensuring your union is honoured both in the eyes of your faith and the Government of India.",
			BannerBg:    "linear-gradient(135deg, #0f4c4c 0%, #0d6b6b 45%, #134e4a 100%)",
			BannerImage: "/static/banners/islam.svg",
			Colors:      Colors{Accent: "#0d9488", Light: "#f0fdfa", Dark: "#0f4c4c", Border: "#99f6e4"},
			LegalActs: []string{
				"Muslim Personal Law (Shariat) Application Act, 1937",
				"Special Marriage Act, 1954",
				"Muslim Women (Protection of Rights on Marriage) Act, 2019",
			},
			HowWeHelp: []HelpItem{
				{"Nikahnama Assistance", "We assist in digitising and validating your Nikahnama alongside government-recognised documentation, creating a complete legal record."},
				{"Qazi Coordination", "Our team can help coordinate with registered Qazis and provide guidance on the documentation they must submit for civil registration."},
				{"Rights Protection", "Legal registration under the Special Marriage Act safeguards both spouses' rights under Indian law regardless of future disputes."},
				{"Witness Documentation", "We guide you through proper witness affidavit preparation, a critical requirement often overlooked in Nikah registrations."},
			},
		}
	case KeyChristianity:
		return Theme{
			Key:         KeyChristianity,
			Label:       "Christianity",
			ShortLabel:  "Christianity",
			Subtitle:    "Christian Marriage Registration",
			HeroHeading: "Your Vows, Fully Recognised",
			HeroSubtext: "From church ceremony to official certificate, we handle the legal registration of your Christian marriage with professionalism and care.",
			Description: "Christian marriages in India hold a cherished place in the country's plural social fabric. Whether solemnised in a Catholic cathedral, a Protestant chapel, or a small community church, your marriage carries spiritual weight and legal significance. Under the Indian Christian Marriage Act, registration is not just a formality. It is the foundation of your legal rights as a married couple. We make this process effortless, accurate, and transparent.",
			BannerBg:    "linear-gradient(135deg, #0f4c4c 0%, #0e7490 45%, #0f4c4c 100%)",
			BannerImage: "/static/banners/christianity.svg",
			Colors:      Colors{Accent: "#0e7490", Light: "#ecfeff", Dark: "#164e63", Border: "#a5f3fc"},
			LegalActs: []string{
				"Indian Christian Marriage Act, 1872",
				"Special Marriage Act, 1954",
				"Divorce Act, 1869 (for reference)",
			},
			HowWeHelp: []HelpItem{
				{"Church Certificate Validation", "We help you prepare and validate your church-issued marriage certificate for submission to civil authorities, a step many couples find confusing."},
				{"Minister & Registrar Coordination", "Our team guides you on the role of the officiating minister, marriage registrar, and the notification period required under the 1872 Act."},
				{"Banns & Notice Compliance", "We ensure your marriage notice and banns comply with the legal publication requirements, avoiding delays in your registration."},
				{"Certificate Delivery", "After verification, your official marriage certificate is delivered digitally and by post, legally valid across government and international institutions."},
			},
		}
	case KeyOther:
		return Theme{
			Key:         KeyOther,
			Label:       "Other / Civil Marriage",
			ShortLabel:  "Other / Civil",
			Subtitle:    "Special Marriage Act Registration",
			HeroHeading: "Love Beyond Boundaries",
			HeroSubtext: "For interfaith, inter-caste, or civil marriages, we provide a straightforward, judgement-free path to legal recognition under the Special Marriage Act.",
			Description: "The Special Marriage Act, 1954 was enacted with a vision of a modern, secular India: a legal framework that recognises every couple's right to marry regardless of religion, caste, or community. Whether yours is an interfaith love story, an inter-caste union, or simply a preference for a civil ceremony, you deserve the same legal protections and dignified process as any other couple. Our platform is built to make the Special Marriage Act accessible, understandable, and stress-free.",
			BannerBg:    "linear-gradient(135deg, #0f4c4c 0%, #115e59 45%, #0f4c4c 100%)",
			BannerImage: "/static/banners/other.svg",
			Colors:      Colors{Accent: "#14b8a6", Light: "#f0fdfa", Dark: "#134e4a", Border: "#5eead4"},
			LegalActs: []string{
				"Special Marriage Act, 1954",
				"Foreign Marriage Act, 1969",
				"Registration of Births, Deaths and Marriages Act",
			},
			HowWeHelp: []HelpItem{
				{"30-Day Notice Management", "We guide you through the mandatory 30-day notice period, handling the paperwork and helping you understand what to expect during this window."},
				{"Interfaith Documentation", "Our team is experienced with interfaith couples and the unique documentation challenges they face. We ensure a respectful, thorough process."},
				{"Privacy & Sensitivity", "We understand that interfaith and inter-caste marriages can be sensitive. Our process is fully confidential and handled with discretion."},
				{"Legal Counselling Access", "Couples using our platform get access to legal Q&A sessions to address specific concerns about rights, objection handling, and post-registration matters."},
			},
		}
	}
	return Theme{}
}
