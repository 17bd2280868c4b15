package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/msalah0e/archmap/internal/diagram"
	"github.com/msalah0e/archmap/internal/interact"
)

// Page describes one HTML rendering. Exactly one of Views or API is used:
// Views drives a static page from precomputed presentations, API points a
// live page at the HTTP server.
type Page struct {
	Title    string
	Subtitle string
	// Views maps a highlighted node id to its presentation; "" is the
	// background view. Initial selects the view shown on load.
	Views   map[string]interact.Presentation
	Initial string
	// API is the base path of a running server, such as "/api".
	API string
}

// StaticPage precomputes one presentation per node plus the background view
// so the page can answer clicks without a server. Expansion and drag state
// from s carry into every view.
func StaticPage(store *diagram.Store, s interact.State, opts interact.Options) Page {
	views := make(map[string]interact.Presentation, len(store.Nodes())+1)
	base := s
	base.Highlighted = ""
	views[""] = interact.Present(store, base, opts)
	for _, n := range store.Nodes() {
		v := base
		v.Highlighted = n.ID
		views[n.ID] = interact.Present(store, v, opts)
	}

	initial := s.Highlighted
	if _, ok := views[initial]; !ok {
		initial = ""
	}
	return Page{Views: views, Initial: initial}
}

// LivePage returns a page that drives a server session at api.
func LivePage(api string) Page {
	return Page{API: strings.TrimRight(api, "/")}
}

// HTML returns a self-contained page that draws nodes at their positions
// and supports pan, zoom, drag, click, and Show/Hide Details.
func HTML(pg Page) (string, error) {
	title := pg.Title
	if title == "" {
		title = "Interactive LLM Architecture Diagram"
	}
	subtitle := pg.Subtitle
	if subtitle == "" {
		subtitle = "Explore how LLMs work internally, how RAG enhances LLMs, and how applications connect to them"
	}

	views := pg.Views
	if views == nil {
		views = map[string]interact.Presentation{}
	}
	viewsJSON, err := json.Marshal(views)
	if err != nil {
		return "", fmt.Errorf("encoding views: %w", err)
	}
	config, err := json.Marshal(map[string]string{
		"api":      pg.API,
		"initial":  pg.Initial,
		"title":    title,
		"subtitle": subtitle,
	})
	if err != nil {
		return "", fmt.Errorf("encoding page config: %w", err)
	}

	return fmt.Sprintf(pageTemplate, string(config), string(viewsJSON)), nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>archmap</title>
<style>
*{margin:0;padding:0;box-sizing:border-box}
body{font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',sans-serif;background:#f7f8fa;color:#222;overflow:hidden}
header{padding:12px 20px;background:#fff;border-bottom:1px solid #e2e4e8}
header h1{font-size:18px}
header p{font-size:13px;color:#666}
#canvas{position:absolute;top:64px;left:0;right:0;bottom:0;overflow:hidden;cursor:grab;background-image:radial-gradient(#aaa 1px,transparent 1px);background-size:16px 16px}
#world{position:absolute;left:0;top:0;transform-origin:0 0}
#edges{position:absolute;left:0;top:0;overflow:visible;pointer-events:none}
.node{position:absolute;width:220px;border-radius:8px;border:2px solid;padding:10px;font-size:12px;cursor:pointer;user-select:none;transition:opacity .15s}
.node.model-internal{background:#d4e9fc;border-color:#4a90e2}
.node.retrieval-component{background:#e3f4d7;border-color:#5cb85c}
.node.application-component{background:#f4dff7;border-color:#a94bd1}
.node-icon{font-size:20px}
.node-title{font-weight:700;font-size:14px;margin:4px 0}
.node-content{color:#444}
.expand-button{margin-top:8px;font-size:11px;padding:3px 8px;border:1px solid #999;border-radius:4px;background:#fff;cursor:pointer}
.expanded-content{margin-top:8px;padding-top:8px;border-top:1px dashed #999;color:#333;line-height:1.4}
#panel{position:absolute;top:76px;right:16px;z-index:5000}
#panel button{padding:6px 12px;border:1px solid #ccc;border-radius:6px;background:#fff;cursor:pointer}
#status{position:absolute;bottom:12px;left:16px;z-index:5000;font-size:11px;color:#888}
</style>
</head>
<body>
<header><h1 id="title"></h1><p id="subtitle"></p></header>
<div id="canvas"><div id="world"><svg id="edges" width="1" height="1"></svg></div></div>
<div id="panel"><button id="reset">Reset Layout</button></div>
<div id="status"></div>
<script>
"use strict";
const CONFIG=%s;
const VIEWS=%s;
const ICONS={"model-internal":"\u{1F9E0}","retrieval-component":"\u{1F4DA}","application-component":"\u{1F50C}"};
const NODE_W=220;

document.getElementById('title').textContent=CONFIG.title;
document.getElementById('subtitle').textContent=CONFIG.subtitle;

const canvas=document.getElementById('canvas');
const world=document.getElementById('world');
const svg=document.getElementById('edges');
const status=document.getElementById('status');
let camera={x:40,y:20,zoom:0.8};
let current=null;

function applyCamera(){world.style.transform='translate('+camera.x+'px,'+camera.y+'px) scale('+camera.zoom+')'}

// Static driver: emphasis comes from precomputed views, expansion and drag
// positions are tracked locally.
function staticDriver(){
  const st={view:CONFIG.initial||'',expanded:new Set(),pos:{}};
  function reset(){
    st.view=CONFIG.initial||'';st.expanded=new Set();st.pos={};
    for(const n of VIEWS[st.view].nodes){if(n.expanded)st.expanded.add(n.id)}
  }
  reset();
  function present(){
    const base=VIEWS[st.view];
    return {highlighted:base.highlighted,edges:base.edges,nodes:base.nodes.map(n=>{
      const exp=st.expanded.has(n.id);
      return Object.assign({},n,{expanded:exp,toggleLabel:exp?'Hide Details':'Show Details',position:st.pos[n.id]||n.position});
    })};
  }
  return {
    start(){return Promise.resolve(present())},
    send(ev){
      const [verb,id,x,y]=ev.split(' ');
      if(verb==='click')st.view=id;
      else if(verb==='background')st.view='';
      else if(verb==='toggle'){st.expanded.has(id)?st.expanded.delete(id):st.expanded.add(id)}
      else if(verb==='drag')st.pos[id]={x:+x,y:+y};
      else if(verb==='reset'){st.view='';st.expanded=new Set();st.pos={}}
      return Promise.resolve(present());
    }
  };
}

// Live driver: every event goes to the server session.
function liveDriver(){
  let session=null;
  async function call(method,path,body){
    const r=await fetch(CONFIG.api+path,{method,headers:{'Content-Type':'application/json'},body:body?JSON.stringify(body):undefined});
    if(!r.ok)throw new Error(method+' '+path+': '+r.status);
    return r.json();
  }
  return {
    async start(){const s=await call('POST','/sessions');session=s.id;status.textContent='session '+session;return s.presentation},
    send(ev){return call('POST','/sessions/'+session+'/events',{event:ev}).then(r=>r.presentation)}
  };
}

const driver=CONFIG.api?liveDriver():staticDriver();

function dispatch(ev){
  driver.send(ev).then(render).catch(err=>{status.textContent=String(err)});
}

function anchor(n,el,side){
  const h=el?el.offsetHeight:80;
  return side==='top'?{x:n.position.x+NODE_W/2,y:n.position.y}:{x:n.position.x+NODE_W/2,y:n.position.y+h};
}

function edgePath(style,a,b){
  if(style==='straight')return 'M'+a.x+','+a.y+' L'+b.x+','+b.y;
  if(style==='step'||style==='smooth'){
    const my=(a.y+b.y)/2;
    if(style==='step')return 'M'+a.x+','+a.y+' V'+my+' H'+b.x+' V'+b.y;
    return 'M'+a.x+','+a.y+' C'+a.x+','+my+' '+b.x+','+my+' '+b.x+','+b.y;
  }
  const dy=Math.max(40,Math.abs(b.y-a.y)/2);
  return 'M'+a.x+','+a.y+' C'+a.x+','+(a.y+dy)+' '+b.x+','+(b.y-dy)+' '+b.x+','+b.y;
}

function render(p){
  current=p;
  world.querySelectorAll('.node').forEach(el=>el.remove());
  const els={};
  for(const n of p.nodes){
    const el=document.createElement('div');
    el.className='node '+n.category;
    el.dataset.id=n.id;
    el.style.left=n.position.x+'px';
    el.style.top=n.position.y+'px';
    el.style.opacity=n.opacity;
    el.style.zIndex=n.zIndex+1;
    const icon=document.createElement('div');icon.className='node-icon';icon.textContent=ICONS[n.category]||'●';el.appendChild(icon);
    const title=document.createElement('div');title.className='node-title';title.textContent=n.title;el.appendChild(title);
    const content=document.createElement('div');content.className='node-content';content.textContent=n.description;el.appendChild(content);
    const btn=document.createElement('button');btn.className='expand-button';btn.textContent=n.toggleLabel;
    btn.addEventListener('mousedown',e=>e.stopPropagation());
    btn.addEventListener('click',e=>{e.stopPropagation();dispatch('toggle '+n.id)});
    el.appendChild(btn);
    if(n.expanded&&n.details){const d=document.createElement('div');d.className='expanded-content';d.textContent=n.details;el.appendChild(d)}
    el.addEventListener('mousedown',e=>startNodeDrag(e,n,el));
    world.appendChild(el);
    els[n.id]=el;
  }
  drawEdges(p,els);
}

function drawEdges(p,els){
  while(svg.firstChild)svg.removeChild(svg.firstChild);
  const byId={};for(const n of p.nodes)byId[n.id]=n;
  const defs=document.createElementNS('http://www.w3.org/2000/svg','defs');
  defs.innerHTML='<marker id="arrow" viewBox="0 0 10 10" refX="10" refY="5" markerWidth="6" markerHeight="6" orient="auto-start-reverse"><path d="M0,0 L10,5 L0,10 z" fill="#555"/></marker>';
  svg.appendChild(defs);
  const sorted=[...p.edges].sort((a,b)=>a.zIndex-b.zIndex);
  for(const e of sorted){
    const s=byId[e.source],t=byId[e.target];
    if(!s||!t)continue;
    const path=document.createElementNS('http://www.w3.org/2000/svg','path');
    path.setAttribute('d',edgePath(e.style,anchor(s,els[s.id],'bottom'),anchor(t,els[t.id],'top')));
    path.setAttribute('fill','none');
    path.setAttribute('stroke',e.active?'#333':'#777');
    path.setAttribute('stroke-width',e.active?2.5:1.5);
    path.setAttribute('marker-end','url(#arrow)');
    path.style.opacity=e.opacity;
    svg.appendChild(path);
    if(e.label){
      const a=anchor(s,els[s.id],'bottom'),b=anchor(t,els[t.id],'top');
      const txt=document.createElementNS('http://www.w3.org/2000/svg','text');
      txt.setAttribute('x',(a.x+b.x)/2);txt.setAttribute('y',(a.y+b.y)/2-4);
      txt.setAttribute('font-size','11');txt.setAttribute('text-anchor','middle');
      txt.style.opacity=e.opacity;txt.textContent=e.label;
      svg.appendChild(txt);
    }
  }
}

let drag=null;
function startNodeDrag(e,n,el){
  e.stopPropagation();
  drag={node:n,el,sx:e.clientX,sy:e.clientY,ox:n.position.x,oy:n.position.y,moved:false};
}

canvas.addEventListener('mousedown',e=>{
  drag={pan:true,sx:e.clientX,sy:e.clientY,cx:camera.x,cy:camera.y,moved:false};
  canvas.style.cursor='grabbing';
});
window.addEventListener('mousemove',e=>{
  if(!drag)return;
  const dx=e.clientX-drag.sx,dy=e.clientY-drag.sy;
  if(Math.abs(dx)+Math.abs(dy)>3)drag.moved=true;
  if(drag.pan){camera.x=drag.cx+dx;camera.y=drag.cy+dy;applyCamera();return}
  if(drag.moved){
    drag.node.position={x:drag.ox+dx/camera.zoom,y:drag.oy+dy/camera.zoom};
    drag.el.style.left=drag.node.position.x+'px';
    drag.el.style.top=drag.node.position.y+'px';
    const els={};world.querySelectorAll('.node').forEach(el=>{els[el.dataset.id]=el});
    drawEdges(current,els);
  }
});
window.addEventListener('mouseup',()=>{
  if(!drag)return;
  const d=drag;drag=null;
  canvas.style.cursor='grab';
  if(d.pan){if(!d.moved)dispatch('background');return}
  if(d.moved)dispatch('drag '+d.node.id+' '+Math.round(d.node.position.x)+' '+Math.round(d.node.position.y));
  else dispatch('click '+d.node.id);
});
canvas.addEventListener('wheel',e=>{
  e.preventDefault();
  const factor=e.deltaY>0?0.9:1.1;
  const z=Math.max(0.2,Math.min(2,camera.zoom*factor));
  const r=canvas.getBoundingClientRect(),mx=e.clientX-r.left,my=e.clientY-r.top;
  camera.x=mx-(mx-camera.x)*(z/camera.zoom);camera.y=my-(my-camera.y)*(z/camera.zoom);camera.zoom=z;
  applyCamera();
},{passive:false});
document.getElementById('reset').addEventListener('click',()=>dispatch('reset'));

applyCamera();
driver.start().then(render).catch(err=>{status.textContent=String(err)});
</script>
</body>
</html>
`
