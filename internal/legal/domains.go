package legal

// domainTerms is the firm's legal domain knowledge base: every practice area
// with the terms and keywords associated with it. Some terms are multi-word
// phrases and are treated as more specific than single words by the
// classifier.
var domainTerms = map[string][]string{
	"Administrative Law": {
		"agencies", "commissions", "regulations", "compliance", "regulatory",
		"administrative bodies", "administrative agency", "regulatory compliance",
		"rule-making", "administrative hearing", "administrative law judge", "ALJ",
		"FTC", "SEC", "FDIC", "Federal Reserve", "regulatory authority",
	},

	"Aviation Law": {
		"aircraft", "aviation", "airline", "airliner", "FAA", "pilots", "charter",
		"aerospace", "airport", "aircraft manufacturer", "crash", "plane", "airline regulation",
		"aircraft liability", "aviation accident", "air carrier",
	},

	"Banking & Finance": {
		"banking", "finance", "banks", "financial", "bank holding", "commercial paper",
		"secured financing", "UCC", "financial institution", "lending", "loan", "credit",
		"financial services", "financial regulation", "consumer finance", "banking compliance",
		"financial markets", "investment", "capital markets", "banking transactions",
	},

	"Bankruptcy Law": {
		"bankruptcy", "creditors", "debtors", "reorganization", "Chapter 11", "Chapter 7",
		"Chapter 13", "work-out", "debt restructuring", "insolvency", "liquidation",
		"debtor-in-possession", "creditor's rights", "bankruptcy court", "bankruptcy trustee",
		"automatic stay", "discharge of debt", "bankruptcy protection",
	},

	"Civil Litigation": {
		"litigation", "trial", "civil", "lawsuit", "settlement", "courtroom", "advocacy",
		"pleadings", "discovery", "depositions", "interrogatories", "motions", "appeals",
		"civil procedure", "evidence", "damages", "injunction", "jury trial", "bench trial",
	},

	"Personal Injury": {
		"personal injury", "injury", "damages", "compensation", "accidents", "negligence",
		"medical experts", "bodily injury", "wrongful death", "product liability",
		"premises liability", "automobile accident", "slip and fall", "medical malpractice",
		"catastrophic injury", "pain and suffering", "lost wages", "physical therapy",
	},

	"Insurance Defense": {
		"insurance", "insurers", "risk management", "claims", "defense", "liability coverage",
		"policy", "premium", "claim investigation", "claim denial", "bad faith", "coverage dispute",
		"policy exclusion", "subrogation", "deductible", "indemnification", "insurance litigation",
	},

	"Products Liability": {
		"products liability", "defective", "failure to warn", "asbestos", "negligence",
		"strict liability", "breach of warranty", "design defect", "manufacturing defect",
		"warning defect", "product recall", "dangerous product", "product safety",
		"consumer product", "pharmaceutical liability", "toxic tort", "mass tort",
	},

	"Complex Litigation": {
		"class action", "mass tort", "multiple parties", "multiple causes", "jurisdictions",
		"multidistrict litigation", "MDL", "consolidation", "bellwether trial",
		"complex case management", "aggregate litigation", "representative action",
		"CAFA", "coordination proceedings", "complex discovery",
	},

	"Civil Rights": {
		"civil rights", "discrimination", "EEOC", "equal opportunity", "harassment",
		"public accommodation", "constitutional rights", "civil liberties", "Section 1983",
		"ADA", "voting rights", "housing discrimination", "equal protection", "due process",
		"first amendment", "free speech", "police misconduct", "prisoner rights",
	},

	"Commercial Transactions": {
		"commercial", "uniform commercial code", "UCC", "mercantile", "sales", "leasing",
		"transfer of funds", "bills of lading", "secured transactions", "commercial contracts",
		"warranties", "distribution agreements", "supply agreements", "franchise agreements",
		"vendor contracts", "purchase agreements", "commercial leases", "sale of goods",
	},

	"Communications Law": {
		"communications", "media", "libel", "slander", "privacy rights", "first amendment", "FCC",
		"telecommunications", "broadcasting", "internet law", "social media", "wireless",
		"spectrum", "net neutrality", "cybersecurity", "data privacy", "TCPA", "COPA",
	},

	"Construction Law": {
		"construction", "building", "developers", "contractors", "subcontractors",
		"construction defect", "mechanic's lien", "construction contracts", "surety bonds",
		"design professional", "architect", "engineer", "building code", "project development",
		"construction delay", "cost overrun", "construction litigation", "construction arbitration",
	},

	"Corporate Law": {
		"corporate", "business transactions", "joint ventures", "mergers", "acquisitions",
		"securities", "venture capital", "investment banking", "corporate governance",
		"shareholders", "board of directors", "fiduciary duty", "corporate formation",
		"bylaws", "corporate finance", "private equity", "IPO", "due diligence", "M&A",
	},

	"Criminal Law": {
		"criminal", "prosecution", "defense", "FBI", "DEA", "misdemeanor", "felony",
		"drug charges", "DUI", "white collar crime", "search and seizure", "Miranda rights",
		"arraignment", "bail", "plea bargain", "sentencing", "probation", "parole",
		"criminal procedure", "criminal trial", "criminal appeals", "habeas corpus",
	},

	"Education Law": {
		"education", "schools", "K-12", "higher education", "tenure", "Department of Education",
		"Title IX", "FERPA", "IDEA", "special education", "IEP", "student discipline",
		"education policy", "school funding", "school districts", "college", "university",
		"academic freedom", "student rights", "teacher contracts", "school liability",
	},

	"Elder Law": {
		"elder", "retirement", "nursing home", "Medicare", "Medicaid", "healthcare directives",
		"aging", "senior citizens", "long-term care", "guardianship", "conservatorship",
		"elder abuse", "retirement planning", "social security", "power of attorney",
		"end-of-life care", "elder protection", "elderly rights", "senior housing",
	},

	"Employee Benefits": {
		"employee benefits", "retirement", "401k", "403b", "health benefits", "compensation",
		"stock options", "ERISA", "pension", "profit sharing", "welfare plans", "cafeteria plans",
		"health insurance", "life insurance", "disability insurance", "deferred compensation",
		"fringe benefits", "equity compensation", "executive compensation",
	},

	"Entertainment/Sports Law": {
		"entertainment", "sports", "athletes", "endorsement", "marketing agreements",
		"on-air personalities", "film", "television", "music", "publishing",
		"entertainment copyright", "talent agreements", "rights acquisition", "royalties",
		"sports leagues", "athlete representation", "sponsorship", "media rights",
		"entertainment licensing", "performance contracts", "entertainment industry",
		"sports contract", "celebrity", "talent", "performer", "broadcasting rights",
	},

	"Employment & Labor Law": {
		"employment", "labor", "unfair labor practices", "collective bargaining",
		"discrimination", "wrongful discharge", "EEOC", "NLRB", "OSHA", "harassment",
		"wage and hour", "FLSA", "ADA", "FMLA", "Title VII", "workplace safety",
		"unions", "labor relations", "non-compete", "employment contracts", "whistleblower",
	},

	"Environmental Law": {
		"environmental", "EPA", "permits", "clean up", "contamination", "land", "industrial",
		"manufacturing", "Clean Air Act", "Clean Water Act", "CERCLA", "RCRA", "Superfund",
		"hazardous waste", "toxic substances", "emissions", "pollution", "environmental impact",
		"environmental compliance", "natural resources", "climate change", "wetlands",
	},

	"Family Law": {
		"family", "marriage", "divorce", "custody", "support", "visitation", "child",
		"spouse", "alimony", "prenuptial", "marital property", "child support", "adoption",
		"surrogacy", "domestic violence", "paternity", "guardianship", "separation",
		"annulment", "family court", "mediation", "parental rights", "custody evaluation",
	},

	"Government Relations": {
		"government relations", "lobbying", "legislation", "administrative rulemaking",
		"influence", "policy", "regulatory affairs", "legislative process", "congressional",
		"state legislature", "local government", "political law", "campaign finance",
		"election law", "government contracts", "public policy", "government ethics",
	},

	"Health Care Law": {
		"healthcare", "medical", "hospitals", "clinics", "physicians", "insurance",
		"managed care", "regulatory", "HIPAA", "healthcare compliance", "Medicare fraud",
		"Medicaid fraud", "Stark Law", "Anti-Kickback", "healthcare transactions",
		"healthcare licenses", "medical licensure", "telemedicine", "health information",
		"patient rights", "healthcare reform", "healthcare policy", "healthcare regulation",
	},

	"Immigration": {
		"immigration", "foreigners", "aliens", "citizenship", "deportation", "naturalization",
		"USCIS", "visa", "green card", "permanent residence", "asylum", "refugee", "H-1B",
		"F-1", "J-1", "employment-based", "family-based", "I-9 compliance", "E-Verify",
		"immigration court", "removal proceedings", "immigration reform", "DACA",
	},

	"Intellectual Property": {
		"intellectual property", "IP", "copyright", "trademark", "patent", "licensing",
		"trade secrets", "USPTO", "infringement", "intellectual asset", "technology transfer",
		"software", "DMCA", "fair use", "patent application", "trademark registration",
		"IP portfolio", "IP litigation", "IP prosecution", "IP management", "inventor",
		"technology licensing", "software licensing", "tech IP", "code",
	},

	"International Practice": {
		"international", "foreign", "global", "cross-border", "multinational", "overseas",
		"international trade", "international finance", "international arbitration",
		"international treaties", "international tax", "foreign investment", "FCPA",
		"extraterritorial", "international corporate", "international business",
		"international dispute", "comparative law", "treaty", "international commercial",
	},

	"Medical Malpractice": {
		"medical malpractice", "standard of care", "misdiagnosis", "physician", "dentist",
		"hospital", "medical negligence", "informed consent", "failure to diagnose",
		"surgical error", "birth injury", "wrongful death", "medical expert witness",
		"medical records", "causation", "damages", "medical liability", "medical board",
	},

	"Municipal Law": {
		"municipal", "government", "state", "local", "public sector", "public finance",
		"municipalities", "city", "county", "town", "village", "zoning", "land use",
		"public utilities", "government contracts", "administrative law", "public works",
		"local ordinances", "municipal bonds", "public infrastructure", "public entities",
	},

	"Privacy Law": {
		"privacy", "data protection", "data privacy", "privacy compliance",
		"PIPEDA", "GDPR", "CCPA", "data breach", "privacy policy",
		"cross-border data", "data transfers", "personal information",
		"privacy impact assessment", "information security", "data governance",
	},

	"Probate & Estate Planning": {
		"probate", "trust", "estate", "wills", "estate planning", "inheritance", "executor",
		"gift tax", "death tax", "fiduciary", "beneficiary", "intestate", "living trust",
		"revocable trust", "irrevocable trust", "testamentary", "power of attorney",
		"living will", "advance directive", "estate tax", "wealth transfer", "succession",
	},

	"Real Estate": {
		"real estate", "property", "lease", "title", "mortgage", "lending", "commercial property",
		"condemnation", "eminent domain", "landlord", "tenant", "easement", "zoning",
		"development", "land use", "real property", "conveyance", "closing", "foreclosure",
		"real estate transactions", "real estate finance", "property management", "REIT",
	},

	"Securities Law": {
		"securities", "investments", "bonds", "stocks", "SEC", "public offerings",
		"private placements", "blue sky", "capital", "securities regulation", "securities fraud",
		"insider trading", "Regulation D", "IPO", "registration", "exempt offerings",
		"investment advisers", "broker-dealers", "FINRA", "securities exchange",
	},

	"Tax Law": {
		"tax", "IRS", "income tax", "tax planning", "tax-exempt", "tax consequences",
		"corporate tax", "partnership tax", "individual tax", "estate tax", "gift tax",
		"international tax", "state and local tax", "SALT", "tax controversy", "tax compliance",
		"tax regulations", "tax credits", "tax deductions", "tax audit", "tax litigation",
	},

	"Tribal/Indian Law": {
		"tribal", "indian", "native american", "tribe", "reservation", "Bureau of Indian Affairs",
		"sovereign", "Indian Child Welfare Act", "tribal court", "treaty rights", "tribal sovereignty",
		"tribal government", "Native lands", "Indian gaming", "cultural preservation",
		"tribal constitution", "aboriginal rights", "tribal enterprises", "tribal resources",
	},

	"Workers' Compensation": {
		"workers' compensation", "industrial injury", "workplace injury", "occupational disease",
		"safety programs", "work-related", "workers' comp", "work injuries", "disability benefits",
		"return to work", "vocational rehabilitation", "permanent disability", "temporary disability",
		"workers' comp claim", "workers' comp insurance", "employer liability", "exclusive remedy",
	},

	"Technology Law": {
		"technology", "software", "SaaS", "cloud computing", "tech", "IT contracts",
		"software licensing", "technology agreements", "technology transactions",
		"tech startups", "software development", "SaaS contracts", "technology licensing",
		"software as a service", "technology vendors", "IT procurement", "tech licensing",
		"digital services", "technology compliance", "data licensing", "tech contracts",
		"software agreements", "technology services", "digital platforms",
	},
}
