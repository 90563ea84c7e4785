package staging

// Copy is one (source, destination) pair executed while staging.
type Copy struct {
	From string
	To   string
}

// Plan is the outcome of one staging run: the copies performed and the final
// commit-candidate set, in insertion order so commit messages and logs stay
// deterministic.
type Plan struct {
	Copies        []Copy
	FilesToCommit []string

	seen map[string]bool
}

func newPlan() *Plan {
	return &Plan{seen: make(map[string]bool)}
}

// addCommit appends path to the commit-candidate set unless already present.
func (p *Plan) addCommit(path string) {
	if p.seen[path] {
		return
	}
	p.seen[path] = true
	p.FilesToCommit = append(p.FilesToCommit, path)
}

func (p *Plan) addCopy(from, to string) {
	p.Copies = append(p.Copies, Copy{From: from, To: to})
}
